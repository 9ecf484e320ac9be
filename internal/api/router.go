package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/wavefall/leaderboard-go/internal/api/handler"
	"github.com/wavefall/leaderboard-go/internal/api/middleware"
	"github.com/wavefall/leaderboard-go/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service

	// CORSAllowedOrigins lists the origins allowed to call the API from a
	// browser. Game clients are served from other hosts (itch.io pages), so
	// the default is to allow any origin.
	CORSAllowedOrigins []string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	r.HandleFunc("/add_player", playerHandler.Add).Methods(http.MethodPost)
	// PATCH is the documented method; POST is kept for clients that cannot
	// send PATCH from embedded game runtimes
	r.HandleFunc("/update_score/{player}", playerHandler.RecordSession).Methods(http.MethodPatch, http.MethodPost)
	r.HandleFunc("/player/{player}", playerHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/get_all_players", playerHandler.List).Methods(http.MethodGet)

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Accept"}),
	)

	return cors(r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
