package handler

import (
	"net/http"

	"github.com/mcoot/boardnight/internal/api/response"
	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/services/stats"
	"github.com/mcoot/boardnight/internal/services/store"
)

// StatsHandler serves the derived statistics views
type StatsHandler struct {
	store *store.Store
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(store *store.Store) *StatsHandler {
	return &StatsHandler{
		store: store,
	}
}

// Leaderboard handles GET /api/v1/stats/leaderboard
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ranked := stats.Leaderboard(h.store.Players())
	response.JSON(w, http.StatusOK, response.PlayersFromModel(ranked))
}

// Vibes handles GET /api/v1/stats/vibes
func (h *StatsHandler) Vibes(w http.ResponseWriter, r *http.Request) {
	counts := stats.VibePopularity(h.store.Sessions(), model.Vibes())
	response.JSON(w, http.StatusOK, response.VibePopularityFromModel(counts))
}

// TopGames handles GET /api/v1/stats/top-games
func (h *StatsHandler) TopGames(w http.ResponseWriter, r *http.Request) {
	ranked := stats.TopGames(h.store.Sessions(), h.store.Games(), stats.DefaultTopGames)
	response.JSON(w, http.StatusOK, response.TopGamesFromModel(ranked))
}

// History handles GET /api/v1/stats/history
func (h *StatsHandler) History(w http.ResponseWriter, r *http.Request) {
	ordered := stats.History(h.store.Sessions())
	response.JSON(w, http.StatusOK, response.SessionsFromModel(ordered))
}
