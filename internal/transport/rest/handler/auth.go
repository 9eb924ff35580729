package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"fontquiz/internal/model"
	"fontquiz/internal/service"
	"fontquiz/internal/transport/rest/middleware"
)

// AuthHandler issues and inspects operator tokens. Visitor session tokens
// are minted by SessionHandler.Create instead.
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new operator auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /v1/auth/login and returns an operator token with its OperatorID
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	resp, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Me handles GET /v1/auth/me and echoes the OperatorID behind the bearer token
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	operatorID := middleware.GetOperatorID(r.Context())
	if operatorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"operatorId": operatorID})
}
