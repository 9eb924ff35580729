package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"fontquiz/internal/model"
	"fontquiz/internal/service"
	"fontquiz/internal/transport/rest/middleware"
)

// SessionHandler handles the visitor's own quiz session
type SessionHandler struct {
	quizSvc   *service.QuizService
	reportSvc *service.ReportService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(quizSvc *service.QuizService, reportSvc *service.ReportService) *SessionHandler {
	return &SessionHandler{
		quizSvc:   quizSvc,
		reportSvc: reportSvc,
	}
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	resp, err := h.quizSvc.Create(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /v1/sessions/me
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.quizSvc.Get)
}

// Start handles POST /v1/sessions/me/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.respond(w, r, func(ctx context.Context, id string) (*model.SessionView, error) {
		return h.quizSvc.Start(ctx, id, req.Email)
	})
}

// CurrentQuestion handles GET /v1/sessions/me/question
func (h *SessionHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.quizSvc.CurrentQuestion(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Answer handles POST /v1/sessions/me/answers
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req model.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.respond(w, r, func(ctx context.Context, id string) (*model.SessionView, error) {
		return h.quizSvc.Answer(ctx, id, &req)
	})
}

// Back handles POST /v1/sessions/me/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.quizSvc.Back)
}

// Reset handles POST /v1/sessions/me/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.quizSvc.Reset)
}

// Restart handles POST /v1/sessions/me/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.quizSvc.Restart)
}

// Results handles GET /v1/sessions/me/results
func (h *SessionHandler) Results(w http.ResponseWriter, r *http.Request) {
	res, err := h.quizSvc.Results(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Report handles GET /v1/sessions/me/report
func (h *SessionHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.Report(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*model.SessionView, error)) {
	sessionID := middleware.GetSessionID(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	view, err := op(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
