package redis

import (
	"fmt"

	"github.com/wavefall/leaderboard-go/internal/model"
)

// Key prefix for all leaderboard data
const keyPrefix = "lbgame"

// playerKey returns the Redis key for a player document (ID, name, createdAt;
// history is stored separately so appends can use list pushes)
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// historyKey returns the Redis key for a player's session history list
func historyKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:history:%s", keyPrefix, id)
}

// nameIndexKey returns the Redis key for the name -> player_id index.
// Entries are written with SETNX, which is what enforces name uniqueness.
func nameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:name:%s", keyPrefix, name)
}

// playersByCreationKey returns the Redis key for the ZSET of player IDs
// scored by creation time
func playersByCreationKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}
