package response

import (
	"time"

	"github.com/wavefall/leaderboard-go/internal/model"
)

// SessionRecord represents one play session in API responses
type SessionRecord struct {
	Wave     int       `json:"wave"`
	Score    int       `json:"score"`
	Playtime int       `json:"playtime"`
	PlayedAt time.Time `json:"played_at"`
}

// Player represents a player in API responses
type Player struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	History   []SessionRecord `json:"history"`
	CreatedAt time.Time       `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	history := make([]SessionRecord, len(p.History))
	for i, r := range p.History {
		history[i] = SessionRecord{
			Wave:     r.Wave,
			Score:    r.Score,
			Playtime: r.Playtime,
			PlayedAt: r.PlayedAt,
		}
	}
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		History:   history,
		CreatedAt: p.CreatedAt,
	}
}

// PlayersFromModel converts a list of players, preserving order
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}
