package seed

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/FantasySeed/internal/config"
	"github.com/hetulpatel/FantasySeed/internal/league"
	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/scoring"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

func testConfig() config.Seed {
	return config.Seed{
		Users:        3,
		Rounds:       2,
		RandomSeed:   42,
		TotalBudget:  100,
		Budget:       league.Range{Min: 80, Max: 100},
		Cost:         league.Range{Min: 5, Max: 25},
		IncludeAdmin: true,
		UserPassword: "pw",
		CreateTables: true,
		WaitTimeout:  5 * time.Second,
	}
}

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

type recordingPublisher struct {
	statLines   []models.StatLineEvent
	roundScores []models.RoundScoreEvent
}

func (p *recordingPublisher) PublishStatLines(_ context.Context, events []models.StatLineEvent) error {
	p.statLines = append(p.statLines, events...)
	return nil
}

func (p *recordingPublisher) PublishRoundScores(_ context.Context, events []models.RoundScoreEvent) error {
	p.roundScores = append(p.roundScores, events...)
	return nil
}

type recordingLeaderboard struct {
	entries []models.LeaderboardEntry
}

func (l *recordingLeaderboard) Replace(_ context.Context, entries []models.LeaderboardEntry) error {
	l.entries = append([]models.LeaderboardEntry(nil), entries...)
	return nil
}

func TestRunSeedsValidLeague(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	pub := &recordingPublisher{}
	lb := &recordingLeaderboard{}

	sum, err := New(store, testConfig(), WithPublisher(pub), WithLeaderboard(lb)).Run(ctx)
	require.NoError(t, err)

	require.True(t, sum.Validation.OK(), "issues: %v", sum.Validation.Issues)
	require.Equal(t, 8, sum.Validation.Checked)
	require.Equal(t, len(league.Teams), sum.Teams)
	require.Equal(t, len(league.Teams)*league.SquadSize, sum.Players)
	require.Len(t, sum.Users, 4)
	require.Equal(t, league.AdminEmail, sum.Users[0].Email)
	require.Equal(t, 8, sum.Rosters)
	require.Equal(t, sum.Players*2, sum.StatLines)
	require.Zero(t, sum.IncompleteRosters)

	round, ok, err := store.CurrentRound(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, round)

	require.Len(t, pub.statLines, sum.StatLines)
	require.Len(t, pub.roundScores, 8)
	for _, ev := range pub.roundScores {
		require.Equal(t, sum.RunID, ev.RunID)
		require.True(t, ev.Complete)
	}
	require.Len(t, lb.entries, 4)
	require.LessOrEqual(t, len(sum.Top), topN)
}

func TestRunTotalsMatchRoundScores(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	_, err := New(store, testConfig()).Run(ctx)
	require.NoError(t, err)

	want := make(map[int64]int)
	for round := 1; round <= 2; round++ {
		entries, err := store.RosterEntries(ctx, round)
		require.NoError(t, err)
		for userID, team := range entries {
			require.Len(t, team, scoring.RosterSize)
			want[userID] += scoring.RoundScore(team)
		}
	}

	board, err := store.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, board, 4)
	for _, e := range board {
		require.Equal(t, want[e.UserID], e.TotalPoints, "user %d", e.UserID)
	}
}

func TestRunIsReproducible(t *testing.T) {
	ctx := context.Background()
	first, second := openStore(t), openStore(t)

	_, err := New(first, testConfig()).Run(ctx)
	require.NoError(t, err)
	_, err = New(second, testConfig()).Run(ctx)
	require.NoError(t, err)

	rowsA, err := first.RosterRows(ctx)
	require.NoError(t, err)
	rowsB, err := second.RosterRows(ctx)
	require.NoError(t, err)
	require.Equal(t, rowsA, rowsB)

	boardA, err := first.Leaderboard(ctx, 0)
	require.NoError(t, err)
	boardB, err := second.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, boardA, boardB)
}

func TestRunTwiceClearsPreviousData(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	cfg := testConfig()

	_, err := New(store, cfg).Run(ctx)
	require.NoError(t, err)
	cfg.CreateTables = false
	sum, err := New(store, cfg).Run(ctx)
	require.NoError(t, err)
	require.True(t, sum.Validation.OK(), "issues: %v", sum.Validation.Issues)
	require.Empty(t, sum.Cleared.Skipped)

	users, err := store.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)
}

func TestRunFailsWithoutTables(t *testing.T) {
	cfg := testConfig()
	cfg.CreateTables = false
	cfg.WaitTimeout = 50 * time.Millisecond

	_, err := New(openStore(t), cfg).Run(context.Background())
	require.Error(t, err)
}

func TestSummaryPrint(t *testing.T) {
	sum, err := New(openStore(t), testConfig()).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	sum.Print(&buf)
	out := buf.String()
	require.Contains(t, out, "All 8 rosters are valid")
	require.Contains(t, out, "admin@gmail.com / admin123")
	require.Contains(t, out, "user3@fantasy.com / pw")
	require.Contains(t, out, "current round 3")
}
