package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wavefall/leaderboard-go/internal/api/request"
	"github.com/wavefall/leaderboard-go/internal/api/response"
	"github.com/wavefall/leaderboard-go/internal/model"
	"github.com/wavefall/leaderboard-go/internal/services/player"
)

// PlayerHandler handles player and session endpoints
type PlayerHandler struct {
	players *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(players *player.Service) *PlayerHandler {
	return &PlayerHandler{
		players: players,
	}
}

// Add handles POST /add_player
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	created, err := h.players.Create(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(created))
}

// RecordSession handles PATCH and POST /update_score/{player}
func (h *PlayerHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["player"]

	var req request.RecordSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Wave == nil || req.Score == nil || req.Playtime == nil {
		WriteError(w, NewInvalidRequestError("wave, score and playtime are required"))
		return
	}

	updated, err := h.players.RecordSession(r.Context(), key, model.SessionRecord{
		Wave:     *req.Wave,
		Score:    *req.Score,
		Playtime: *req.Playtime,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(updated))
}

// Get handles GET /player/{player}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["player"]

	found, err := h.players.Get(r.Context(), key)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(found))
}

// List handles GET /get_all_players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}
