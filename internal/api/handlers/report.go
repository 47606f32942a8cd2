package handlers

import (
	"net/http"

	"github.com/jobhunt/backend/internal/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) ByUser(w http.ResponseWriter, r *http.Request) {

	report, err := h.reports.ByUser(r.Context(), pageFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
