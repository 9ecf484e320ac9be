package player

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/wavefall/leaderboard-go/internal/dependencies/clock"
	"github.com/wavefall/leaderboard-go/internal/dependencies/random"
	"github.com/wavefall/leaderboard-go/internal/model"
	"github.com/wavefall/leaderboard-go/internal/storage"
)

// Service owns player creation, lookup and session recording
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	opTimeout time.Duration
}

// Config holds configuration for the player service
type Config struct {
	// OperationTimeout bounds each storage round trip so a slow backend
	// fails visibly instead of hanging the request
	OperationTimeout time.Duration
}

// DefaultConfig returns default player service configuration
func DefaultConfig() Config {
	return Config{
		OperationTimeout: 5 * time.Second,
	}
}

// New creates a new player service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.OperationTimeout == 0 {
		cfg.OperationTimeout = DefaultConfig().OperationTimeout
	}
	return &Service{
		storage:   storage,
		clock:     clock,
		random:    random,
		logger:    logger,
		opTimeout: cfg.OperationTimeout,
	}
}

// Create registers a new player with an empty history.
// The name lookup before the insert only exists to return the friendly
// conflict early; the storage layer's own uniqueness constraint is what
// actually prevents duplicates when two creates race.
func (s *Service) Create(ctx context.Context, name string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	if len(name) > model.MaxNameLength {
		return nil, model.ErrNameTooLong
	}
	if model.IsPlayerID(name) {
		return nil, model.ErrNameReserved
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	_, err := s.storage.GetPlayerByName(ctx, name)
	if err == nil {
		return nil, model.ErrNameTaken
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	player := &model.Player{
		ID:        model.FormatPlayerID(s.random.String(model.IDSuffixLength(), model.IDAlphabet)),
		Name:      name,
		History:   []model.SessionRecord{},
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// Get fetches a player by ID or exact name
func (s *Service) Get(ctx context.Context, key string) (*model.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	return s.resolve(ctx, key)
}

// RecordSession appends one play session to the player's history and returns
// the updated player. Validation happens before any storage call; the append
// itself is delegated to the storage layer's atomic push.
func (s *Service) RecordSession(ctx context.Context, key string, record model.SessionRecord) (*model.Player, error) {
	if !record.Valid() {
		return nil, model.ErrInvalidSessionRecord
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	player, err := s.resolve(ctx, key)
	if err != nil {
		return nil, err
	}

	record.PlayedAt = s.clock.Now()

	updated, err := s.storage.AppendSession(ctx, player.ID, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session recorded",
		slog.String("player_id", string(player.ID)),
		slog.Int("wave", record.Wave),
		slog.Int("score", record.Score),
		slog.Int("playtime", record.Playtime),
	)

	return updated, nil
}

// List returns all players, newest-created first
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	return s.storage.ListPlayers(ctx)
}

// resolve dispatches a lookup key to the right index: keys in the player ID
// format go to the primary key, everything else to the name index
func (s *Service) resolve(ctx context.Context, key string) (*model.Player, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > model.MaxNameLength {
		return nil, model.ErrInvalidPlayerKey
	}

	if model.IsPlayerID(key) {
		return s.storage.GetPlayer(ctx, model.PlayerID(key))
	}
	return s.storage.GetPlayerByName(ctx, key)
}
