package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wavefall/leaderboard-go/internal/model"
	"github.com/wavefall/leaderboard-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// Coordination lives entirely in Redis primitives so the service can run as
// many concurrent processes: SETNX on the name index enforces name
// uniqueness, and RPUSH on the per-player history list appends exactly one
// record without touching the rest of the sequence.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// playerDoc is the persisted form of a player, minus the history, which is
// kept in its own list so appends never rewrite the document
type playerDoc struct {
	ID        model.PlayerID `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(playerDoc{
		ID:        player.ID,
		Name:      player.Name,
		CreatedAt: player.CreatedAt,
	})
	if err != nil {
		return err
	}

	// The name index entry is the uniqueness constraint: exactly one of two
	// racing creates can claim it
	claimed, err := s.client.SetNX(ctx, nameIndexKey(player.Name), string(player.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrNameTaken
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.ZAdd(ctx, playersByCreationKey(), redis.Z{
		// float64 scores lose sub-microsecond precision; creations that
		// collide list in lexical id order, which is acceptable because
		// ordering within a tied timestamp is unspecified
		Score:  float64(player.CreatedAt.UnixNano()),
		Member: string(player.ID),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		// Release the name claim, best effort on a fresh deadline: a claim
		// with no document behind it would make the name unusable forever
		// while lookups keep returning not-found
		delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = s.client.Del(delCtx, nameIndexKey(player.Name)).Err()
		return err
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	pipe := s.client.Pipeline()
	docCmd := pipe.Get(ctx, playerKey(id))
	histCmd := pipe.LRange(ctx, historyKey(id), 0, -1)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	return buildPlayer(docCmd, histCmd)
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	id, err := s.client.Get(ctx, nameIndexKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(id))
}

func (s *Storage) AppendSession(ctx context.Context, id model.PlayerID, record model.SessionRecord) (*model.Player, error) {
	exists, err := s.client.Exists(ctx, playerKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrPlayerNotFound
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	// Single-element push; concurrent appenders interleave but never lose a
	// record. Players are never deleted, so the existence check above cannot
	// race with a removal.
	if err := s.client.RPush(ctx, historyKey(id), data).Err(); err != nil {
		return nil, err
	}

	return s.GetPlayer(ctx, id)
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	ids, err := s.client.ZRevRange(ctx, playersByCreationKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Player{}, nil
	}

	pipe := s.client.Pipeline()
	docCmds := make([]*redis.StringCmd, len(ids))
	histCmds := make([]*redis.StringSliceCmd, len(ids))
	for i, id := range ids {
		docCmds[i] = pipe.Get(ctx, playerKey(model.PlayerID(id)))
		histCmds[i] = pipe.LRange(ctx, historyKey(model.PlayerID(id)), 0, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	players := make([]*model.Player, 0, len(ids))
	for i := range ids {
		player, err := buildPlayer(docCmds[i], histCmds[i])
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				// Index entry without a document; skip rather than fail the listing
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// buildPlayer assembles a player from its document and history commands
func buildPlayer(docCmd *redis.StringCmd, histCmd *redis.StringSliceCmd) (*model.Player, error) {
	data, err := docCmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var doc playerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries, err := histCmd.Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	history := make([]model.SessionRecord, 0, len(entries))
	for _, entry := range entries {
		var record model.SessionRecord
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, err
		}
		history = append(history, record)
	}

	return &model.Player{
		ID:        doc.ID,
		Name:      doc.Name,
		History:   history,
		CreatedAt: doc.CreatedAt,
	}, nil
}
