package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayerList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SessionRecord response type (matches API)
type SessionRecord struct {
	Wave     int       `json:"wave"`
	Score    int       `json:"score"`
	Playtime int       `json:"playtime"`
	PlayedAt time.Time `json:"played_at"`
}

// Player response type (matches API)
type Player struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	History   []SessionRecord `json:"history"`
	CreatedAt time.Time       `json:"created_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Created: %s\n", p.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Sessions (%d):\n", len(p.History))
	for _, s := range p.History {
		fmt.Printf("  - wave %d, %d pts, %ds played at %s\n",
			s.Wave, s.Score, s.Playtime, s.PlayedAt.Format(time.RFC3339))
	}
}

func (o *Output) printPlayerList(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		best := 0
		for _, s := range p.History {
			if s.Score > best {
				best = s.Score
			}
		}
		fmt.Printf("  - %s (%s) - %d sessions, best %d pts\n",
			p.Name, p.ID, len(p.History), best)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
