package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sweepstats/sweepstats/internal/api/handler"
	"github.com/sweepstats/sweepstats/internal/api/middleware"
	"github.com/sweepstats/sweepstats/internal/services/auth"
	"github.com/sweepstats/sweepstats/internal/services/stats"
	"github.com/sweepstats/sweepstats/internal/services/summary"
	"github.com/sweepstats/sweepstats/internal/services/token"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	TokenService   *token.Service
	StatsService   *stats.Service
	SummaryService *summary.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService, cfg.TokenService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService, cfg.SummaryService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.TokenService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for registering/logging in)
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)

	// Protected account routes
	users := api.PathPrefix("/users").Subrouter()
	users.Use(authMiddleware)
	users.HandleFunc("/me", userHandler.Me).Methods(http.MethodGet)

	// Token refresh requires a currently valid token
	tokens := api.PathPrefix("/tokens").Subrouter()
	tokens.Use(authMiddleware)
	tokens.HandleFunc("/refresh", userHandler.Refresh).Methods(http.MethodPost)

	// Game stats routes (all require auth)
	gameStats := api.PathPrefix("/game-stats").Subrouter()
	gameStats.Use(authMiddleware)
	gameStats.HandleFunc("", statsHandler.Save).Methods(http.MethodPost)
	gameStats.HandleFunc("", statsHandler.List).Methods(http.MethodGet)
	gameStats.HandleFunc("/summary", statsHandler.Summary).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
