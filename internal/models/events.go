package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hetulpatel/FantasySeed/internal/scoring"
)

// StatLineEvent is the payload consumed from the player stats topic. The box score fields
// sit at the top level of the message next to the keys.
type StatLineEvent struct {
	RunID    string `json:"run_id"`
	PlayerID int64  `json:"player_id"`
	Round    int    `json:"round"`
	scoring.StatLine
	EmittedAt time.Time `json:"emitted_at"`
}

// NewStatLineEvent stamps a stat line for publishing.
func NewStatLineEvent(runID string, p PlayerRoundPoints, emittedAt time.Time) StatLineEvent {
	return StatLineEvent{
		RunID:     runID,
		PlayerID:  p.PlayerID,
		Round:     p.Round,
		StatLine:  p.Stats,
		EmittedAt: emittedAt,
	}
}

// RoundScoreEvent is the payload published after a manager's round is scored.
type RoundScoreEvent struct {
	RunID      string    `json:"run_id"`
	UserID     int64     `json:"user_id"`
	Round      int       `json:"round"`
	Points     int       `json:"points"`
	Complete   bool      `json:"complete"`
	ComputedAt time.Time `json:"computed_at"`
}

// NewRunID returns an identifier shared by every event of one seeding or scoring run.
func NewRunID() string {
	return uuid.NewString()
}
