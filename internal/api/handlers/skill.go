package handlers

import (
	"net/http"

	"github.com/jobhunt/backend/internal/services"
)

type SkillHandler struct {
	skills *services.SkillService
}

func NewSkillHandler(skills *services.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

type skillRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {

	page, err := h.skills.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	skill, err := h.skills.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {

	var req skillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.skills.Create(r.Context(), services.SkillRequest{Name: req.Name, IsActive: req.IsActive})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req skillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.skills.Update(r.Context(), id, services.SkillRequest{Name: req.Name, IsActive: req.IsActive})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.skills.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
