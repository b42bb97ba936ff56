package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/boardnight/internal/api/response"
	"github.com/mcoot/boardnight/internal/services/store"
)

// LibraryHandler handles whole-library operations: export and reseeding
type LibraryHandler struct {
	store *store.Store
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(store *store.Store) *LibraryHandler {
	return &LibraryHandler{
		store: store,
	}
}

// Export handles GET /api/v1/export, serving the full snapshot as a download
// in the persisted JSON shape.
func (h *LibraryHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Export()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="boardnight-export.json"`)
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(snapshot)
}

// Reset handles POST /api/v1/library/reset, reinstalling the seed players
// and games while keeping session history.
func (h *LibraryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.store.ResetLibrary(r.Context())
	response.NoContent(w)
}
