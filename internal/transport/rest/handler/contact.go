package handler

import (
	"encoding/json"
	"net/http"

	"fontquiz/internal/model"
	"fontquiz/internal/service"
)

// ContactHandler handles the contact form
type ContactHandler struct {
	leadSvc *service.LeadService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(leadSvc *service.LeadService) *ContactHandler {
	return &ContactHandler{leadSvc: leadSvc}
}

// ContactRequest is the request body for the contact form
type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// Submit handles POST /v1/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg := &model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		SessionID: req.SessionID,
	}
	if err := h.leadSvc.Contact(r.Context(), msg); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			// delivery failures are upstream problems, not ours
			status = http.StatusBadGateway
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"id": msg.ID})
}
