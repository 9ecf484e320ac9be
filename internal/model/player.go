package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player ID format: "p_" followed by idLength characters from IDAlphabet
const (
	idPrefix = "p_"
	idLength = 16
)

// IDAlphabet is the character set used when generating player IDs
const IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// MaxNameLength bounds player names after trimming
const MaxNameLength = 64

// Player is a named entity with an append-only history of play sessions
type Player struct {
	ID        PlayerID        `json:"id"`
	Name      string          `json:"name"`
	History   []SessionRecord `json:"history"`
	CreatedAt time.Time       `json:"created_at"`
}

// SessionRecord is one completed play session.
// Wave, Score and Playtime are always non-negative once persisted.
type SessionRecord struct {
	Wave     int       `json:"wave"`
	Score    int       `json:"score"`
	Playtime int       `json:"playtime"`
	PlayedAt time.Time `json:"played_at"`
}

// Valid reports whether all session fields are in range
func (r SessionRecord) Valid() bool {
	return r.Wave >= 0 && r.Score >= 0 && r.Playtime >= 0
}

// FormatPlayerID builds a PlayerID from a generated suffix
func FormatPlayerID(suffix string) PlayerID {
	return PlayerID(idPrefix + suffix)
}

// IDSuffixLength returns the length of the generated portion of a player ID
func IDSuffixLength() int {
	return idLength
}

// IsPlayerID reports whether key is in the player ID format.
// Lookup keys matching this format are resolved by ID rather than name;
// names in this format are rejected at creation so the dispatch stays
// unambiguous.
func IsPlayerID(key string) bool {
	if len(key) != len(idPrefix)+idLength || key[:len(idPrefix)] != idPrefix {
		return false
	}
	for _, c := range key[len(idPrefix):] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the player.
// Storage implementations hand out clones so callers can never mutate the
// persisted history slice in place.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	if p.History != nil {
		cp.History = make([]SessionRecord, len(p.History))
		copy(cp.History, p.History)
	}
	return &cp
}
