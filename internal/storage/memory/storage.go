package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wavefall/leaderboard-go/internal/model"
	"github.com/wavefall/leaderboard-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// The single mutex is the serialization point that gives this backend the
// same uniqueness and append guarantees the Redis backend gets from its
// native primitives.
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	nameIndex map[string]model.PlayerID
	// creation order of player IDs, used to break listing ties when two
	// players share a CreatedAt timestamp (frozen test clocks)
	order []model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:   make(map[model.PlayerID]*model.Player),
		nameIndex: make(map[string]model.PlayerID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.nameIndex[player.Name]; taken {
		return model.ErrNameTaken
	}

	s.players[player.ID] = player.Clone()
	s.nameIndex[player.Name] = player.ID
	s.order = append(s.order, player.ID)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.nameIndex[name]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) AppendSession(ctx context.Context, id model.PlayerID, record model.SessionRecord) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player.History = append(player.History, record)
	return player.Clone(), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]*model.Player, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		players = append(players, s.players[s.order[i]].Clone())
	}

	// Newest first; the stable sort keeps reverse insertion order for
	// equal timestamps
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].CreatedAt.After(players[j].CreatedAt)
	})
	return players, nil
}
