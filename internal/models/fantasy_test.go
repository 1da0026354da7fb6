package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/FantasySeed/internal/roster"
	"github.com/hetulpatel/FantasySeed/internal/scoring"
)

func TestRankEntries(t *testing.T) {
	ranked := RankEntries([]LeaderboardEntry{
		{UserID: 1, TotalPoints: 300},
		{UserID: 2, TotalPoints: 250},
		{UserID: 3, TotalPoints: 250},
		{UserID: 4, TotalPoints: 100},
	})
	got := make([]int, 0, len(ranked))
	for _, e := range ranked {
		got = append(got, e.Rank)
	}
	require.Equal(t, []int{1, 2, 2, 3}, got)
	require.Empty(t, RankEntries(nil))
}

func TestPlayerCandidate(t *testing.T) {
	p := Player{ID: 7, TeamID: 2, Name: "Jón Jónsson", Position: roster.Center, Cost: 12}
	require.Equal(t, roster.Candidate{ID: 7, Category: roster.Center, Cost: 12}, p.Candidate())
}

func TestNewPlayerRoundPoints(t *testing.T) {
	line := scoring.StatLine{Points: 10, Rebounds: 5, Assists: 3, Steals: 2, Blocks: 1, Turnovers: 2, TeamWin: true}
	p := NewPlayerRoundPoints(3, 4, line)
	require.Equal(t, 27, p.FantasyPoints)
	require.Equal(t, int64(3), p.PlayerID)
	require.Equal(t, 4, p.Round)
}
