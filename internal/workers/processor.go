package workers

import (
	"context"
	"fmt"

	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/models"
)

// StatStore is the persistence a stat-line worker writes to.
type StatStore interface {
	UpsertPlayerRoundPoints(ctx context.Context, rows []models.PlayerRoundPoints) error
	RefreshPlayerTotals(ctx context.Context, playerIDs ...int64) error
}

// Processor scores incoming box scores and stores them.
type Processor struct {
	store StatStore
}

// NewProcessor returns a processor writing to store.
func NewProcessor(store StatStore) *Processor {
	return &Processor{store: store}
}

// Handle validates the stat line, upserts the player's round points and refreshes the
// player's season total.
func (p *Processor) Handle(ctx context.Context, ev *models.StatLineEvent) error {
	if ev == nil {
		return nil
	}
	if ev.PlayerID <= 0 || ev.Round <= 0 {
		return fmt.Errorf("stat line player=%d round=%d: bad key", ev.PlayerID, ev.Round)
	}
	if err := ev.StatLine.Validate(); err != nil {
		return fmt.Errorf("stat line player=%d round=%d: %w", ev.PlayerID, ev.Round, err)
	}

	row := models.NewPlayerRoundPoints(ev.PlayerID, ev.Round, ev.StatLine)
	if err := p.store.UpsertPlayerRoundPoints(ctx, []models.PlayerRoundPoints{row}); err != nil {
		return err
	}
	if err := p.store.RefreshPlayerTotals(ctx, ev.PlayerID); err != nil {
		return err
	}
	logging.Debugf("[stats] player=%d round=%d fantasy=%d run=%s", ev.PlayerID, ev.Round, row.FantasyPoints, ev.RunID)
	return nil
}
