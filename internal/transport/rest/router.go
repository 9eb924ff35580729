package rest

import (
	"net/http"

	"fontquiz/internal/catalog"
	"fontquiz/internal/config"
	"fontquiz/internal/scoring"
	"fontquiz/internal/service"
	"fontquiz/internal/transport/rest/handler"
	"fontquiz/internal/transport/rest/middleware"
	"fontquiz/internal/transport/ws"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all dependencies for the router
type Container struct {
	Catalog       *catalog.Catalog
	Engine        *scoring.Engine
	AuthService   *service.AuthService
	QuizService   *service.QuizService
	LeadService   *service.LeadService
	StatsService  *service.StatsService
	ReportService *service.ReportService
	WSHub         *ws.Hub
	CORS          config.CORSConfig
	Logger        *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	sessionHandler := handler.NewSessionHandler(c.QuizService, c.ReportService)
	catalogHandler := handler.NewCatalogHandler(c.Catalog, c.Engine)
	contactHandler := handler.NewContactHandler(c.LeadService)
	operatorHandler := handler.NewOperatorHandler(c.QuizService, c.StatsService, c.LeadService, c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.QuizService, logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORS))
	r.Use(middleware.Logging(logger.Named("http")))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions", catalogHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/styles", catalogHandler.Styles).Methods("GET", "OPTIONS")
	v1.HandleFunc("/recommend", catalogHandler.Recommend).Methods("POST", "OPTIONS")
	v1.HandleFunc("/contact", contactHandler.Submit).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws/sessions/me", wsHandler.SessionWS).Methods("GET")

	// Health check
	healthz := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}
	r.HandleFunc("/health", healthz).Methods("GET")
	v1.HandleFunc("/health", healthz).Methods("GET")

	// Session routes (require session token); registered before the
	// operator routes so "/sessions/me" never matches "/sessions/{id}"
	sessionRoutes := v1.PathPrefix("/sessions/me").Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("", sessionHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/start", sessionHandler.Start).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/question", sessionHandler.CurrentQuestion).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/answers", sessionHandler.Answer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/back", sessionHandler.Back).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/reset", sessionHandler.Reset).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/restart", sessionHandler.Restart).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/results", sessionHandler.Results).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/report", sessionHandler.Report).Methods("GET", "OPTIONS")

	// Operator routes (require operator auth)
	operatorRoutes := v1.NewRoute().Subrouter()
	operatorRoutes.Use(authMW.RequireOperator)

	operatorRoutes.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/sessions/{id}", operatorHandler.GetSession).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/sessions/{id}", operatorHandler.DeleteSession).Methods("DELETE", "OPTIONS")
	operatorRoutes.HandleFunc("/sessions/{id}/skip", operatorHandler.Skip).Methods("POST", "OPTIONS")
	operatorRoutes.HandleFunc("/stats/styles", operatorHandler.StyleStats).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/stats/questions", operatorHandler.QuestionStats).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/leads", operatorHandler.Leads).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/reports/{id}", operatorHandler.ArchivedReport).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
