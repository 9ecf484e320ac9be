package storage

import (
	"context"

	"github.com/wavefall/leaderboard-go/internal/model"
)

// Storage defines the interface for player persistence.
//
// Implementations must enforce name uniqueness and history-append atomicity
// with their own primitives: the service layer's existence pre-checks are
// advisory only, and may race across processes.
type Storage interface {
	// CreatePlayer persists a new player. It returns model.ErrNameTaken if
	// another player already holds the name, even when two creates race.
	CreatePlayer(ctx context.Context, player *model.Player) error

	// GetPlayer fetches a player with full history by ID
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// GetPlayerByName fetches a player with full history by exact name
	GetPlayerByName(ctx context.Context, name string) (*model.Player, error)

	// AppendSession atomically appends one record to the player's history
	// and returns the post-append snapshot. Concurrent appends to the same
	// player must all be preserved; none may overwrite another.
	AppendSession(ctx context.Context, id model.PlayerID, record model.SessionRecord) (*model.Player, error)

	// ListPlayers returns every player ordered by creation time, newest first
	ListPlayers(ctx context.Context) ([]*model.Player, error)
}
