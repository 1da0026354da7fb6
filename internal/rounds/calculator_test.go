package rounds

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/scoring"
)

type fakeStore struct {
	users     []int64
	entries   map[int][]rosterEntry
	stored    []models.UserRoundPoints
	refreshes int
	upsertErr error
}

type rosterEntry struct {
	userID int64
	entry  scoring.Entry
}

func (f *fakeStore) UserIDs(context.Context) ([]int64, error) { return f.users, nil }

func (f *fakeStore) RosterEntries(_ context.Context, round int) (map[int64][]scoring.Entry, error) {
	out := make(map[int64][]scoring.Entry)
	for _, e := range f.entries[round] {
		out[e.userID] = append(out[e.userID], e.entry)
	}
	return out, nil
}

func (f *fakeStore) UpsertUserRoundPoints(_ context.Context, rows []models.UserRoundPoints) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.stored = append(f.stored, rows...)
	return nil
}

func (f *fakeStore) RefreshUserTotals(context.Context) error {
	f.refreshes++
	return nil
}

type fakePublisher struct {
	events []models.RoundScoreEvent
}

func (p *fakePublisher) PublishRoundScores(_ context.Context, events []models.RoundScoreEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func team(userID int64, starters, bench []int) []rosterEntry {
	var out []rosterEntry
	pid := userID * 100
	for _, p := range starters {
		pid++
		out = append(out, rosterEntry{userID, scoring.Entry{PlayerID: pid, Points: p, OnCourt: true}})
	}
	for _, p := range bench {
		pid++
		out = append(out, rosterEntry{userID, scoring.Entry{PlayerID: pid, Points: p}})
	}
	return out
}

func TestCalculate(t *testing.T) {
	var round1 []rosterEntry
	round1 = append(round1, team(1, []int{20, 20, 20, 20, 20}, []int{20, 15, 10, 5, 1})...)
	round1 = append(round1, team(2, []int{20, 20, 20, 20, 20}, []int{20, 15, 10, 5})...)
	store := &fakeStore{users: []int64{1, 2, 3}, entries: map[int][]rosterEntry{1: round1}}
	pub := &fakePublisher{}

	calc := NewCalculator(store, pub, "run-1")
	calc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	res, err := calc.Calculate(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []models.UserRoundPoints{
		{UserID: 1, Round: 1, Points: 145},
		{UserID: 2, Round: 1, Points: 0},
		{UserID: 3, Round: 1, Points: 0},
	}, res.Scores)
	require.Equal(t, []int64{2, 3}, res.Incomplete)
	require.Equal(t, res.Scores, store.stored)
	require.Equal(t, 1, store.refreshes)

	require.Len(t, pub.events, 3)
	require.Equal(t, models.RoundScoreEvent{
		RunID:      "run-1",
		UserID:     1,
		Round:      1,
		Points:     145,
		Complete:   true,
		ComputedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}, pub.events[0])
	require.False(t, pub.events[1].Complete)
}

func TestCalculateRangeWithoutPublisher(t *testing.T) {
	store := &fakeStore{
		users: []int64{1},
		entries: map[int][]rosterEntry{
			1: team(1, []int{1, 1, 1, 1, 1}, []int{1, 1, 1, 1, 1}),
			2: team(1, []int{2, 2, 2, 2, 2}, []int{2, 2, 2, 2, 2}),
		},
	}
	results, err := NewCalculator(store, nil, "").CalculateRange(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, 8, results[0].Scores[0].Points)
	require.Equal(t, 16, results[1].Scores[0].Points)
	require.Equal(t, 0, results[2].Scores[0].Points)
	require.Equal(t, 3, store.refreshes)
}

func TestCalculateStoreError(t *testing.T) {
	boom := errors.New("boom")
	store := &fakeStore{users: []int64{1}, upsertErr: boom}
	pub := &fakePublisher{}

	_, err := NewCalculator(store, pub, "").Calculate(context.Background(), 1)
	require.ErrorIs(t, err, boom)
	require.Empty(t, pub.events)
	require.Zero(t, store.refreshes)
}
