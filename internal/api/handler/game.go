package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/boardnight/internal/api/request"
	"github.com/mcoot/boardnight/internal/api/response"
	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/services/store"
	"github.com/mcoot/boardnight/internal/services/suggest"
)

// GameHandler handles game library endpoints
type GameHandler struct {
	store *store.Store
}

// NewGameHandler creates a new game handler
func NewGameHandler(store *store.Store) *GameHandler {
	return &GameHandler{
		store: store,
	}
}

// List handles GET /api/v1/games, optionally filtered with ?q=
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games := h.store.GamesMatching(r.URL.Query().Get("q"))
	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	vibes := make([]model.Vibe, len(req.Vibes))
	for i, v := range req.Vibes {
		vibes[i] = model.Vibe(v)
	}

	game, err := h.store.AddGame(r.Context(), store.GameParams{
		Title:      req.Title,
		MinPlayers: req.MinPlayers,
		MaxPlayers: req.MaxPlayers,
		Duration:   req.Duration,
		Vibes:      vibes,
		Weight:     model.Weight(req.Weight),
		Notes:      req.Notes,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// Rename handles PATCH /api/v1/games/{id}
func (h *GameHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.RenameGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.store.EditGameTitle(r.Context(), id, req.Title)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.store.RemoveGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Suggestions handles GET /api/v1/games/suggestions?vibe=&count=&limit=
func (h *GameHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	vibe := model.Vibe(query.Get("vibe"))
	if vibe != "" && !model.ValidVibe(vibe) {
		WriteError(w, model.ErrUnknownVibe)
		return
	}

	count, err := optionalInt(query.Get("count"))
	if err != nil {
		WriteError(w, NewInvalidRequestError("count must be an integer"))
		return
	}
	limit, err := optionalInt(query.Get("limit"))
	if err != nil {
		WriteError(w, NewInvalidRequestError("limit must be an integer"))
		return
	}

	ranked := suggest.Suggest(h.store.Games(), vibe, count, limit)
	response.JSON(w, http.StatusOK, response.GamesFromModel(ranked))
}

// optionalInt parses a query parameter that may be absent (zero)
func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
