package handler

import (
	"encoding/json"
	"net/http"

	"fontquiz/internal/catalog"
	"fontquiz/internal/model"
	"fontquiz/internal/scoring"
)

// CatalogHandler serves the static quiz tables and stateless recommendations
type CatalogHandler struct {
	catalog *catalog.Catalog
	engine  *scoring.Engine
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog, engine *scoring.Engine) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		engine:  engine,
	}
}

// RecommendRequest is the request body for a stateless recommendation
type RecommendRequest struct {
	Answers string `json:"answers"` // one A/B letter per question, e.g. "ABBAABABBA"
}

// Questions handles GET /v1/questions
func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"traits":    h.catalog.Traits(),
		"questions": h.catalog.Questions(),
	})
}

// Styles handles GET /v1/styles
func (h *CatalogHandler) Styles(w http.ResponseWriter, r *http.Request) {
	style := r.URL.Query().Get("style")
	if style == "" {
		writeJSON(w, http.StatusOK, h.catalog.Styles())
		return
	}

	s, err := model.ParseStyle(style)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"style": h.catalog.StyleInfo(s),
		"fonts": h.catalog.FontsByStyle(s),
	})
}

// Recommend handles POST /v1/recommend
func (h *CatalogHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.engine.Recommend(req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
