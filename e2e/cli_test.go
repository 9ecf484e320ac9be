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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefall/leaderboard-go/internal/api"
	"github.com/wavefall/leaderboard-go/internal/factory"
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
	binaryPath := filepath.Join(projectRoot, "bin", "lbgame-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/lbgame")
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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/health")

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
	ID      string `json:"id"`
	Name    string `json:"name"`
	History []struct {
		Wave     int `json:"wave"`
		Score    int `json:"score"`
		Playtime int `json:"playtime"`
	} `json:"history"`
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

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register a player
	output, err := cli.run("player", "add", "--name", "Nova")
	require.NoError(t, err, "output: %s", output)

	var created playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "Nova", created.Name)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.History)

	// Record two sessions
	output, err = cli.run("score", "record", "Nova", "--wave", "5", "--score", "2500", "--playtime", "120")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("score", "record", created.ID, "--wave", "7", "--score", "4100", "--playtime", "200")
	require.NoError(t, err, "output: %s", output)

	var afterSecond playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &afterSecond))
	require.Len(t, afterSecond.History, 2)
	assert.Equal(t, 2500, afterSecond.History[0].Score)
	assert.Equal(t, 4100, afterSecond.History[1].Score)

	// Fetch by name
	output, err = cli.run("player", "get", "Nova")
	require.NoError(t, err, "output: %s", output)

	var fetched playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	require.Len(t, fetched.History, 2)
}

func TestCLI_PlayerList(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	for _, name := range []string{"First", "Second", "Third"} {
		output, err := cli.run("player", "add", "--name", name)
		require.NoError(t, err, "output: %s", output)
	}

	output, err := cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)

	var players []playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &players))
	require.Len(t, players, 3)
	// Newest registration first
	assert.Equal(t, "Third", players[0].Name)
	assert.Equal(t, "First", players[2].Name)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Duplicate name
	output, err := cli.run("player", "add", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("player", "add", "--name", "Alice")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "taken")

	// Unknown player
	output, err = cli.run("player", "get", "Nobody")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Recording against an unknown player must not create one
	output, err = cli.run("score", "record", "Nobody", "--wave", "1", "--score", "10", "--playtime", "5")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}
