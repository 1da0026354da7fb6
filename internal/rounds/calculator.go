// Package rounds scores every manager's roster for a round and stores the result.
package rounds

import (
	"context"
	"fmt"
	"time"

	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/scoring"
)

// Store is the persistence the calculator reads from and writes to.
type Store interface {
	UserIDs(ctx context.Context) ([]int64, error)
	RosterEntries(ctx context.Context, round int) (map[int64][]scoring.Entry, error)
	UpsertUserRoundPoints(ctx context.Context, rows []models.UserRoundPoints) error
	RefreshUserTotals(ctx context.Context) error
}

// Publisher receives the computed scores. It may be nil.
type Publisher interface {
	PublishRoundScores(ctx context.Context, events []models.RoundScoreEvent) error
}

// Result summarizes one calculated round.
type Result struct {
	Round      int
	Scores     []models.UserRoundPoints
	Incomplete []int64
}

// Calculator turns stored rosters and stat lines into per-round manager scores.
type Calculator struct {
	store     Store
	publisher Publisher
	runID     string
	now       func() time.Time
}

// NewCalculator builds a calculator. runID tags published events.
func NewCalculator(store Store, publisher Publisher, runID string) *Calculator {
	return &Calculator{store: store, publisher: publisher, runID: runID, now: time.Now}
}

// Calculate scores every manager for the round, upserts UserRoundPoints and refreshes
// totals. Managers without a complete roster score zero.
func (c *Calculator) Calculate(ctx context.Context, round int) (Result, error) {
	res, err := c.score(ctx, round)
	if err != nil {
		return res, err
	}
	if err := c.store.UpsertUserRoundPoints(ctx, res.Scores); err != nil {
		return res, fmt.Errorf("store round %d points: %w", round, err)
	}
	if err := c.store.RefreshUserTotals(ctx); err != nil {
		return res, err
	}
	if err := c.publish(ctx, res); err != nil {
		return res, err
	}
	return res, nil
}

// CalculateRange runs Calculate for rounds first..last inclusive.
func (c *Calculator) CalculateRange(ctx context.Context, first, last int) ([]Result, error) {
	if last < first {
		return nil, nil
	}
	out := make([]Result, 0, last-first+1)
	for round := first; round <= last; round++ {
		res, err := c.Calculate(ctx, round)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (c *Calculator) score(ctx context.Context, round int) (Result, error) {
	res := Result{Round: round}
	userIDs, err := c.store.UserIDs(ctx)
	if err != nil {
		return res, err
	}
	entries, err := c.store.RosterEntries(ctx, round)
	if err != nil {
		return res, err
	}

	res.Scores = make([]models.UserRoundPoints, 0, len(userIDs))
	for _, id := range userIDs {
		team := entries[id]
		if !scoring.Complete(team) {
			res.Incomplete = append(res.Incomplete, id)
			logging.Debugf("[rounds] user=%d round=%d has %d scored players; scoring zero", id, round, len(team))
		}
		res.Scores = append(res.Scores, models.UserRoundPoints{
			UserID: id,
			Round:  round,
			Points: scoring.RoundScore(team),
		})
	}
	return res, nil
}

func (c *Calculator) publish(ctx context.Context, res Result) error {
	if c.publisher == nil || len(res.Scores) == 0 {
		return nil
	}
	incomplete := make(map[int64]bool, len(res.Incomplete))
	for _, id := range res.Incomplete {
		incomplete[id] = true
	}
	computed := c.now().UTC()
	events := make([]models.RoundScoreEvent, 0, len(res.Scores))
	for _, s := range res.Scores {
		events = append(events, models.RoundScoreEvent{
			RunID:      c.runID,
			UserID:     s.UserID,
			Round:      s.Round,
			Points:     s.Points,
			Complete:   !incomplete[s.UserID],
			ComputedAt: computed,
		})
	}
	if err := c.publisher.PublishRoundScores(ctx, events); err != nil {
		return fmt.Errorf("publish round %d scores: %w", res.Round, err)
	}
	return nil
}
