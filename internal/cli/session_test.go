package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/boardnight/internal/dependencies/mocks"
)

func TestSessionAddDefaultsDateAndTimeFromClock(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/sessions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"s1","status":"scheduled"}`))
	}))
	defer server.Close()

	origClock := cliClock
	cliClock = mocks.NewMockClock(time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC))
	defer func() { cliClock = origClock }()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"--server", server.URL,
		"session", "add",
		"--vibe", "Chill",
		"--game", "g1",
		"--player", "p1",
		"--player", "p2",
	})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "2024-03-15", got["date"])
	assert.Equal(t, "19:30", got["time"])
}

func TestSessionAddExplicitDateAndTime(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"s1","status":"scheduled"}`))
	}))
	defer server.Close()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"--server", server.URL,
		"session", "add",
		"--date", "2024-04-01",
		"--time", "18:00",
		"--vibe", "Chill",
		"--game", "g1",
		"--player", "p1",
		"--player", "p2",
	})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "2024-04-01", got["date"])
	assert.Equal(t, "18:00", got["time"])
}
