package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fontquiz/internal/cache"
	"fontquiz/internal/quiz"
	"fontquiz/internal/scoring"
	"fontquiz/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps domain errors to status codes
func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, cache.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrInvalidEmail),
		errors.Is(err, quiz.ErrInvalidChoice),
		errors.Is(err, scoring.ErrInvalidAnswers),
		errors.Is(err, service.ErrInvalidContact):
		return http.StatusBadRequest
	case errors.Is(err, quiz.ErrAlreadyStarted),
		errors.Is(err, quiz.ErrNotStarted),
		errors.Is(err, quiz.ErrNotInProgress),
		errors.Is(err, quiz.ErrWrongQuestion),
		errors.Is(err, quiz.ErrCannotGoBack),
		errors.Is(err, quiz.ErrNotCompleted):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrArchiveDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
