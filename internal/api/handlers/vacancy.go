package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jobhunt/backend/internal/api/middleware"
	"github.com/jobhunt/backend/internal/apperrors"
	"github.com/jobhunt/backend/internal/repositories"
	"github.com/jobhunt/backend/internal/services"
)

type VacancyHandler struct {
	vacancies *services.VacancyService
	validate  *validator.Validate
}

func NewVacancyHandler(vacancies *services.VacancyService) *VacancyHandler {
	return &VacancyHandler{vacancies: vacancies, validate: validator.New()}
}

type createVacancyRequest struct {
	Text   string   `json:"text" validate:"required"`
	Slug   string   `json:"slug" validate:"required,max=50"`
	Status string   `json:"status" validate:"required"`
	Skills []string `json:"skills"`
}

type updateVacancyRequest struct {
	Text   *string  `json:"text"`
	Slug   *string  `json:"slug"`
	Status *string  `json:"status"`
	Skills []string `json:"skills"`
}

func (h *VacancyHandler) List(w http.ResponseWriter, r *http.Request) {

	filter := repositories.ListFilter{
		Text:   r.URL.Query().Get("text"),
		Skills: r.URL.Query()["skill"],
	}

	page, err := h.vacancies.List(r.Context(), filter, pageFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *VacancyHandler) Get(w http.ResponseWriter, r *http.Request) {

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	vacancy, err := h.vacancies.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vacancy)
}

func (h *VacancyHandler) Create(w http.ResponseWriter, r *http.Request) {

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperrors.Unauthorized("unauthorized"))
		return
	}

	var req createVacancyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, validationError(err))
		return
	}

	created, err := h.vacancies.Create(r.Context(), userID, services.CreateVacancyRequest{
		Text:   req.Text,
		Slug:   req.Slug,
		Status: req.Status,
		Skills: req.Skills,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *VacancyHandler) Update(w http.ResponseWriter, r *http.Request) {

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateVacancyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.vacancies.Update(r.Context(), id, services.UpdateVacancyRequest{
		Text:   req.Text,
		Slug:   req.Slug,
		Status: req.Status,
		Skills: req.Skills,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *VacancyHandler) Delete(w http.ResponseWriter, r *http.Request) {

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.vacancies.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *VacancyHandler) Like(w http.ResponseWriter, r *http.Request) {

	var ids []uint
	if err := decodeJSON(r, &ids); err != nil {
		writeError(w, err)
		return
	}

	liked, err := h.vacancies.Like(r.Context(), ids)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, liked)
}
