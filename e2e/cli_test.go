package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/boardnight/internal/api"
	"github.com/mcoot/boardnight/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "bnight-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/bnight")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application with in-memory storage
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	app.Store.Initialize(context.Background())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	router := api.NewRouter(api.RouterConfig{
		Logger: logger,
		Store:  app.Store,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type playerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
	Wins  int    `json:"wins"`
}

type gameResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	MinPlayers int      `json:"min_players"`
	MaxPlayers int      `json:"max_players"`
	Vibes      []string `json:"vibes"`
	Weight     string   `json:"weight"`
}

type sessionResponse struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Vibe      string   `json:"vibe"`
	GameID    string   `json:"game_id"`
	PlayerIDs []string `json:"player_ids"`
	Status    string   `json:"status"`
	WinnerIDs []string `json:"winner_ids"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var health healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestCLI_PlayerLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Add a player
	output, err := cli.run("player", "add", "--name", "Morgan", "--emoji", "🦊")
	require.NoError(t, err, "output: %s", output)

	var morgan playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &morgan))
	assert.Equal(t, "Morgan", morgan.Name)
	assert.Equal(t, "🦊", morgan.Emoji)

	// List shows the seed players plus Morgan
	output, err = cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)

	var players []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &players))
	assert.Len(t, players, 4)

	// Rename
	output, err = cli.run("player", "rename", morgan.ID, "--name", "Mo")
	require.NoError(t, err, "output: %s", output)

	var renamed playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &renamed))
	assert.Equal(t, "Mo", renamed.Name)

	// Remove
	_, err = cli.run("player", "remove", morgan.ID)
	require.NoError(t, err)

	// Duplicate names are rejected
	output, err = cli.run("player", "add", "--name", "alex")
	require.Error(t, err)
	assert.Contains(t, output, "NAME_TAKEN")
}

func TestCLI_SessionFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Grab seed data
	output, err := cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)
	var players []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &players))
	require.Len(t, players, 3)

	output, err = cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)
	var games []gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games, 6)

	// Schedule a session
	output, err = cli.run("session", "add",
		"--date", "2024-03-15",
		"--time", "19:00",
		"--vibe", "Chill",
		"--game", games[0].ID,
		"--player", players[0].ID,
		"--player", players[1].ID,
	)
	require.NoError(t, err, "output: %s", output)

	var session sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &session))
	assert.Equal(t, "scheduled", session.Status)

	// Record results
	output, err = cli.run("session", "results", session.ID, "--winner", players[0].ID)
	require.NoError(t, err, "output: %s", output)

	var completed sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &completed))
	assert.Equal(t, "completed", completed.Status)
	assert.Equal(t, []string{players[0].ID}, completed.WinnerIDs)

	// The leaderboard reflects the win
	output, err = cli.run("stats", "leaderboard")
	require.NoError(t, err, "output: %s", output)

	var ranked []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &ranked))
	assert.Equal(t, players[0].ID, ranked[0].ID)
	assert.Equal(t, 1, ranked[0].Wins)
}

func TestCLI_GameSuggest(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("game", "suggest", "--vibe", "Party", "--count", "6")
	require.NoError(t, err, "output: %s", output)

	var ranked []gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &ranked))
	require.NotEmpty(t, ranked)
	assert.Contains(t, ranked[0].Vibes, "Party")
}

func TestCLI_LibraryReset(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Reset requires confirmation
	_, err := cli.run("library", "reset")
	require.Error(t, err)

	_, err = cli.run("library", "reset", "--yes")
	require.NoError(t, err)

	output, err := cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)
	var games []gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	assert.Len(t, games, 6)
}
