package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/boardnight/internal/api/handler"
	"github.com/mcoot/boardnight/internal/api/middleware"
	"github.com/mcoot/boardnight/internal/services/store"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Store  *store.Store
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Store)
	gameHandler := handler.NewGameHandler(cfg.Store)
	sessionHandler := handler.NewSessionHandler(cfg.Store)
	statsHandler := handler.NewStatsHandler(cfg.Store)
	libraryHandler := handler.NewLibraryHandler(cfg.Store)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Rename).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Game library routes (suggestions before the catch-all {id} routes)
	api.HandleFunc("/games/suggestions", gameHandler.Suggestions).Methods(http.MethodGet)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Rename).Methods(http.MethodPatch)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/duplicate", sessionHandler.Duplicate).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/results", sessionHandler.RecordResults).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)

	// Statistics routes
	api.HandleFunc("/stats/leaderboard", statsHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/stats/vibes", statsHandler.Vibes).Methods(http.MethodGet)
	api.HandleFunc("/stats/top-games", statsHandler.TopGames).Methods(http.MethodGet)
	api.HandleFunc("/stats/history", statsHandler.History).Methods(http.MethodGet)

	// Library-wide routes
	api.HandleFunc("/export", libraryHandler.Export).Methods(http.MethodGet)
	api.HandleFunc("/library/reset", libraryHandler.Reset).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
