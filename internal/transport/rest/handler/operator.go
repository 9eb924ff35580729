package handler

import (
	"net/http"
	"strconv"

	"fontquiz/internal/model"
	"fontquiz/internal/service"

	"github.com/gorilla/mux"
)

// OperatorHandler handles operator-only endpoints
type OperatorHandler struct {
	quizSvc   *service.QuizService
	statsSvc  *service.StatsService
	leadSvc   *service.LeadService
	reportSvc *service.ReportService
}

// NewOperatorHandler creates a new operator handler
func NewOperatorHandler(quizSvc *service.QuizService, statsSvc *service.StatsService, leadSvc *service.LeadService, reportSvc *service.ReportService) *OperatorHandler {
	return &OperatorHandler{
		quizSvc:   quizSvc,
		statsSvc:  statsSvc,
		leadSvc:   leadSvc,
		reportSvc: reportSvc,
	}
}

// GetSession handles GET /v1/sessions/{id}
func (h *OperatorHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.quizSvc.State(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Skip handles POST /v1/sessions/{id}/skip
func (h *OperatorHandler) Skip(w http.ResponseWriter, r *http.Request) {
	view, err := h.quizSvc.SkipToResults(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DeleteSession handles DELETE /v1/sessions/{id}
func (h *OperatorHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.quizSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StyleStats handles GET /v1/stats/styles?limit=
func (h *OperatorHandler) StyleStats(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	top, err := h.statsSvc.TopStyles(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

// QuestionStats handles GET /v1/stats/questions
func (h *OperatorHandler) QuestionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsSvc.Questions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Leads handles GET /v1/leads?event=&limit=
func (h *OperatorHandler) Leads(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	event := model.LeadEvent(r.URL.Query().Get("event"))

	leads, err := h.leadSvc.Recent(r.Context(), event, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

// ArchivedReport handles GET /v1/reports/{id}
func (h *OperatorHandler) ArchivedReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.Archived(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
