// Package seed fills a fresh database with a reproducible fantasy league: teams, players,
// managers, per-round budgets and rosters, box scores and the derived round points.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hetulpatel/FantasySeed/internal/config"
	"github.com/hetulpatel/FantasySeed/internal/league"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/roster"
	"github.com/hetulpatel/FantasySeed/internal/rounds"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

const tablePollInterval = 500 * time.Millisecond

// Publisher receives the generated stat lines and the computed round scores.
type Publisher interface {
	rounds.Publisher
	PublishStatLines(ctx context.Context, events []models.StatLineEvent) error
}

// LeaderboardCache receives the final standings.
type LeaderboardCache interface {
	Replace(ctx context.Context, entries []models.LeaderboardEntry) error
}

// Option configures optional Seeder side channels.
type Option func(*Seeder)

// WithPublisher streams events while seeding.
func WithPublisher(p Publisher) Option {
	return func(s *Seeder) { s.publisher = p }
}

// WithLeaderboard refreshes the cache once seeding finishes.
func WithLeaderboard(lb LeaderboardCache) Option {
	return func(s *Seeder) { s.leaderboard = lb }
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// Seeder runs the seeding pipeline against one store.
type Seeder struct {
	store       *sqlite.Store
	cfg         config.Seed
	publisher   Publisher
	leaderboard LeaderboardCache
	now         func() time.Time
}

// New returns a seeder for cfg writing to store.
func New(store *sqlite.Store, cfg config.Seed, opts ...Option) *Seeder {
	s := &Seeder{store: store, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the whole pipeline. The returned summary is populated as far as the
// pipeline got, even on error.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	sum := &Summary{
		RunID:        models.NewRunID(),
		RandomSeed:   s.cfg.RandomSeed,
		Rounds:       s.cfg.Rounds,
		CurrentRound: s.cfg.CurrentRound(),
	}
	if sum.RandomSeed == 0 {
		sum.RandomSeed = time.Now().UnixNano()
	}
	logging.Infof("[seed] run=%s seed=%d users=%d rounds=%d db=%s", sum.RunID, sum.RandomSeed, s.cfg.Users, s.cfg.Rounds, s.store.Path())

	if err := s.prepare(ctx, sum); err != nil {
		return sum, err
	}

	gen := league.NewGenerator(rand.New(rand.NewSource(sum.RandomSeed))) //nolint:gosec // reproducible fixtures
	gen.Cost = s.cfg.Cost
	gen.Budget = s.cfg.Budget

	players, err := s.insertLeague(ctx, gen, sum)
	if err != nil {
		return sum, err
	}
	if err := s.insertRosters(ctx, gen, players, sum); err != nil {
		return sum, err
	}
	if err := s.insertStatLines(ctx, gen, players, sum); err != nil {
		return sum, err
	}
	if err := s.scoreRounds(ctx, sum); err != nil {
		return sum, err
	}
	if err := s.store.SetCurrentRound(ctx, sum.CurrentRound); err != nil {
		return sum, fmt.Errorf("set current round: %w", err)
	}
	logging.Infof("[seed] current round set to %d", sum.CurrentRound)

	if err := s.validate(ctx, sum); err != nil {
		return sum, err
	}
	if err := s.refreshLeaderboard(ctx, sum); err != nil {
		return sum, err
	}
	return sum, nil
}

func (s *Seeder) prepare(ctx context.Context, sum *Summary) error {
	if s.cfg.CreateTables {
		if err := s.store.CreateTables(ctx); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}

	waitCtx := ctx
	if s.cfg.WaitTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.cfg.WaitTimeout)
		defer cancel()
	}
	if err := s.store.WaitForTables(waitCtx, tablePollInterval); err != nil {
		return fmt.Errorf("wait for tables: %w", err)
	}

	report, err := s.store.ClearTables(ctx)
	if err != nil {
		return fmt.Errorf("clear tables: %w", err)
	}
	sum.Cleared = report
	for _, table := range report.Skipped {
		logging.Infof("[seed] skipped %s (table does not exist)", table)
	}
	return nil
}

func (s *Seeder) insertLeague(ctx context.Context, gen *league.Generator, sum *Summary) ([]models.Player, error) {
	teams, err := s.store.InsertTeams(ctx, league.TeamNames())
	if err != nil {
		return nil, err
	}
	sum.Teams = len(teams)
	logging.Infof("[seed] inserted %d teams", len(teams))

	var players []models.Player
	for i, team := range teams {
		squad, err := gen.Players(team.ID, league.Teams[i])
		if err != nil {
			return nil, err
		}
		players = append(players, squad...)
	}
	players, err = s.store.InsertPlayers(ctx, players)
	if err != nil {
		return nil, err
	}
	sum.Players = len(players)
	logging.Infof("[seed] inserted %d players", len(players))

	users, err := s.store.InsertUsers(ctx, league.Users(s.cfg.Users, s.cfg.UserPassword, s.cfg.IncludeAdmin))
	if err != nil {
		return nil, err
	}
	sum.Users = users
	logging.Infof("[seed] inserted %d users", len(users))
	return players, nil
}

func (s *Seeder) insertRosters(ctx context.Context, gen *league.Generator, players []models.Player, sum *Summary) error {
	candidates := make([]roster.Candidate, 0, len(players))
	for _, p := range players {
		candidates = append(candidates, p.Candidate())
	}
	pool := roster.PoolFrom(candidates)
	selector := roster.NewSelector(gen.Rand(), roster.Positions...)

	var (
		budgets []models.UserRoundTeam
		entries []models.FantasyTeamEntry
	)
	for _, u := range sum.Users {
		for round := 1; round <= s.cfg.Rounds; round++ {
			sel, err := selector.Select(pool, gen.RoundBudget())
			if err != nil {
				return fmt.Errorf("select roster user=%d round=%d: %w", u.ID, round, err)
			}
			if sel.BudgetRaised {
				sum.RaisedBudgets++
				logging.Debugf("[seed] user=%d round=%d budget %d raised to %d", u.ID, round, sel.RequestedBudget, sel.Budget)
			}
			if sel.Upgraded() {
				sum.UpgradedRosters++
			}
			budgets = append(budgets, models.UserRoundTeam{
				UserID:      u.ID,
				Round:       round,
				TotalBudget: s.cfg.TotalBudget,
				UsedBudget:  sel.TotalCost,
				IsLocked:    gen.Locked(),
			})
			for _, slot := range sel.Lineup() {
				entries = append(entries, models.FantasyTeamEntry{
					UserID:    u.ID,
					PlayerID:  slot.Candidate.ID,
					Round:     round,
					IsActive:  true,
					IsOnCourt: slot.OnCourt,
				})
			}
		}
	}

	if err := s.store.InsertUserRoundTeams(ctx, budgets); err != nil {
		return err
	}
	if err := s.store.InsertFantasyTeams(ctx, entries); err != nil {
		return err
	}
	sum.Rosters = len(budgets)
	logging.Infof("[seed] inserted %d rosters (%d raised budgets, %d upgraded)", len(budgets), sum.RaisedBudgets, sum.UpgradedRosters)
	return nil
}

func (s *Seeder) insertStatLines(ctx context.Context, gen *league.Generator, players []models.Player, sum *Summary) error {
	rows := make([]models.PlayerRoundPoints, 0, len(players)*s.cfg.Rounds)
	for round := 1; round <= s.cfg.Rounds; round++ {
		for _, p := range players {
			rows = append(rows, models.NewPlayerRoundPoints(p.ID, round, gen.StatLine()))
		}
	}
	if err := s.store.UpsertPlayerRoundPoints(ctx, rows); err != nil {
		return err
	}
	if err := s.store.RefreshPlayerTotals(ctx); err != nil {
		return err
	}
	sum.StatLines = len(rows)
	logging.Infof("[seed] inserted %d player stat lines", len(rows))

	if s.publisher == nil {
		return nil
	}
	emitted := s.now().UTC()
	events := make([]models.StatLineEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, models.NewStatLineEvent(sum.RunID, r, emitted))
	}
	if err := s.publisher.PublishStatLines(ctx, events); err != nil {
		return fmt.Errorf("publish stat lines: %w", err)
	}
	return nil
}

func (s *Seeder) scoreRounds(ctx context.Context, sum *Summary) error {
	var pub rounds.Publisher
	if s.publisher != nil {
		pub = s.publisher
	}
	calc := rounds.NewCalculator(s.store, pub, sum.RunID)
	results, err := calc.CalculateRange(ctx, 1, s.cfg.Rounds)
	if err != nil {
		return fmt.Errorf("calculate rounds: %w", err)
	}
	for _, res := range results {
		sum.IncompleteRosters += len(res.Incomplete)
	}
	logging.Infof("[seed] scored %d rounds", len(results))
	return nil
}

func (s *Seeder) validate(ctx context.Context, sum *Summary) error {
	rows, err := s.store.RosterRows(ctx)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(sum.Users))
	for _, u := range sum.Users {
		ids = append(ids, u.ID)
	}
	sum.Validation = Validate(rows, ids, s.cfg.Rounds)
	if !sum.Validation.OK() {
		logging.Errorf("[seed] validation found %d issues", len(sum.Validation.Issues))
	}
	return nil
}

func (s *Seeder) refreshLeaderboard(ctx context.Context, sum *Summary) error {
	entries, err := s.store.Leaderboard(ctx, 0)
	if err != nil {
		return err
	}
	if len(entries) > topN {
		sum.Top = entries[:topN]
	} else {
		sum.Top = entries
	}
	if s.leaderboard == nil {
		return nil
	}
	if err := s.leaderboard.Replace(ctx, entries); err != nil {
		return fmt.Errorf("refresh leaderboard cache: %w", err)
	}
	logging.Infof("[seed] leaderboard cache refreshed with %d managers", len(entries))
	return nil
}
