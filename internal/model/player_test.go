package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPlayerID(t *testing.T) {
	valid := []string{
		"p_abcdefghijklmnop",
		"p_0123456789abcdef",
		string(FormatPlayerID("zzzzzzzzzzzzzzzz")),
	}
	for _, key := range valid {
		assert.True(t, IsPlayerID(key), key)
	}

	invalid := []string{
		"",
		"Alice",
		"p_",
		"p_short",
		"p_abcdefghijklmnopq",  // one char too many
		"p_ABCDEFGHIJKLMNOP",   // uppercase not in alphabet
		"p_abcdefgh_jklmnop",   // underscore not in alphabet
		"q_abcdefghijklmnop",   // wrong prefix
		"pp_abcdefghijklmno",   // wrong prefix
	}
	for _, key := range invalid {
		assert.False(t, IsPlayerID(key), key)
	}
}

func TestSessionRecordValid(t *testing.T) {
	assert.True(t, SessionRecord{Wave: 0, Score: 0, Playtime: 0}.Valid())
	assert.True(t, SessionRecord{Wave: 5, Score: 2500, Playtime: 120}.Valid())
	assert.False(t, SessionRecord{Wave: -1, Score: 0, Playtime: 0}.Valid())
	assert.False(t, SessionRecord{Wave: 0, Score: -1, Playtime: 0}.Valid())
	assert.False(t, SessionRecord{Wave: 0, Score: 0, Playtime: -1}.Valid())
}

func TestPlayerClone(t *testing.T) {
	p := &Player{
		ID:        FormatPlayerID("abcdefghijklmnop"),
		Name:      "Alice",
		History:   []SessionRecord{{Wave: 1, Score: 100, Playtime: 30}},
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	clone := p.Clone()
	assert.Equal(t, p, clone)

	clone.History[0].Score = 999
	clone.History = append(clone.History, SessionRecord{Wave: 2})
	assert.Equal(t, 100, p.History[0].Score)
	assert.Len(t, p.History, 1)

	var nilPlayer *Player
	assert.Nil(t, nilPlayer.Clone())
}
