package models

import (
	"github.com/hetulpatel/FantasySeed/internal/roster"
	"github.com/hetulpatel/FantasySeed/internal/scoring"
)

// Team is a real basketball club.
type Team struct {
	ID   int64
	Name string
}

// Player belongs to a team and fills one roster position.
type Player struct {
	ID          int64
	TeamID      int64
	Name        string
	Position    roster.Category
	Cost        int
	TotalPoints int
}

// Candidate exposes the player to the roster selector.
func (p Player) Candidate() roster.Candidate {
	return roster.Candidate{ID: p.ID, Category: p.Position, Cost: p.Cost}
}

// User is a fantasy manager. Password is only populated for freshly seeded users.
type User struct {
	ID           int64
	Name         string
	Email        string
	Password     string
	PasswordHash string
	TotalPoints  int
}

// UserRoundTeam records a manager's budget for a round.
type UserRoundTeam struct {
	UserID      int64
	Round       int
	TotalBudget int
	UsedBudget  int
	IsLocked    bool
}

// FantasyTeamEntry is one rostered player for a manager and round.
type FantasyTeamEntry struct {
	UserID    int64
	PlayerID  int64
	Round     int
	IsActive  bool
	IsOnCourt bool
}

// PlayerRoundPoints is a player's stat line and derived fantasy points for a round.
type PlayerRoundPoints struct {
	PlayerID      int64
	Round         int
	Stats         scoring.StatLine
	FantasyPoints int
}

// NewPlayerRoundPoints scores the stat line.
func NewPlayerRoundPoints(playerID int64, round int, stats scoring.StatLine) PlayerRoundPoints {
	return PlayerRoundPoints{
		PlayerID:      playerID,
		Round:         round,
		Stats:         stats,
		FantasyPoints: scoring.FantasyPoints(stats),
	}
}

// UserRoundPoints is a manager's aggregate score for a round.
type UserRoundPoints struct {
	UserID int64
	Round  int
	Points int
}

// LeaderboardEntry is one ranked manager.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"user_id"`
	UserName    string `json:"user_name"`
	TotalPoints int    `json:"total_points"`
}

// RankEntries assigns dense ranks to entries already sorted by points descending.
func RankEntries(entries []LeaderboardEntry) []LeaderboardEntry {
	rank := 0
	for i := range entries {
		if i == 0 || entries[i].TotalPoints != entries[i-1].TotalPoints {
			rank++
		}
		entries[i].Rank = rank
	}
	return entries
}
