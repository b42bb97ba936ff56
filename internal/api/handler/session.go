package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/boardnight/internal/api/request"
	"github.com/mcoot/boardnight/internal/api/response"
	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/services/store"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *store.Store) *SessionHandler {
	return &SessionHandler{
		store: store,
	}
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions := h.store.Sessions()
	response.JSON(w, http.StatusOK, response.SessionsFromModel(sessions))
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	playerIDs := make([]model.PlayerID, len(req.PlayerIDs))
	for i, pid := range req.PlayerIDs {
		playerIDs[i] = model.PlayerID(pid)
	}

	session, err := h.store.AddSession(r.Context(), store.SessionParams{
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		Vibe:      model.Vibe(req.Vibe),
		GameID:    model.GameID(req.GameID),
		PlayerIDs: playerIDs,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(session))
}

// Duplicate handles POST /api/v1/sessions/{id}/duplicate
func (h *SessionHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	session, err := h.store.DuplicateSession(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(session))
}

// RecordResults handles POST /api/v1/sessions/{id}/results
func (h *SessionHandler) RecordResults(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.RecordResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	winnerIDs := make([]model.PlayerID, len(req.WinnerIDs))
	for i, wid := range req.WinnerIDs {
		winnerIDs[i] = model.PlayerID(wid)
	}

	session, err := h.store.RecordResults(r.Context(), id, winnerIDs)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if err := h.store.RemoveSession(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
