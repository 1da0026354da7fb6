// Package league holds the fixed league reference data and the random generator used to
// fabricate costs, budgets and box scores.
package league

import (
	"fmt"
	"math/rand"

	"github.com/hetulpatel/FantasySeed/internal/hashutil"
	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/roster"
	"github.com/hetulpatel/FantasySeed/internal/scoring"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

func (r Range) draw(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// StatRanges bounds each generated counting stat.
type StatRanges struct {
	Points    Range
	Rebounds  Range
	Assists   Range
	Steals    Range
	Blocks    Range
	Turnovers Range
}

// DefaultStatRanges mirrors a typical box score.
var DefaultStatRanges = StatRanges{
	Points:    Range{0, 35},
	Rebounds:  Range{0, 15},
	Assists:   Range{0, 12},
	Steals:    Range{0, 4},
	Blocks:    Range{0, 5},
	Turnovers: Range{0, 6},
}

// Generator draws every random value the seeder needs from one source.
type Generator struct {
	rng    *rand.Rand
	Cost   Range
	Budget Range
	Stats  StatRanges
}

// NewGenerator returns a generator with the default league ranges.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{
		rng:    rng,
		Cost:   Range{5, 25},
		Budget: Range{80, 100},
		Stats:  DefaultStatRanges,
	}
}

// Rand exposes the shared source so the roster selector shuffles from the same seed.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// PlayerCost draws a price.
func (g *Generator) PlayerCost() int {
	return g.Cost.draw(g.rng)
}

// RoundBudget draws a manager's budget ceiling for a round.
func (g *Generator) RoundBudget() int {
	return g.Budget.draw(g.rng)
}

// Locked flips a coin for a round's lock flag.
func (g *Generator) Locked() bool {
	return g.rng.Intn(2) == 1
}

// StatLine draws a box score.
func (g *Generator) StatLine() scoring.StatLine {
	return scoring.StatLine{
		Points:    g.Stats.Points.draw(g.rng),
		Rebounds:  g.Stats.Rebounds.draw(g.rng),
		Assists:   g.Stats.Assists.draw(g.rng),
		Steals:    g.Stats.Steals.draw(g.rng),
		Blocks:    g.Stats.Blocks.draw(g.rng),
		Turnovers: g.Stats.Turnovers.draw(g.rng),
		TeamWin:   g.rng.Intn(2) == 1,
	}
}

// SquadSize is how many players of each team are seeded.
var SquadSize = len(roster.Positions) * roster.PerCategory

// Players builds the squad for a team from its first SquadSize names, filling positions in
// roster order with roster.PerCategory players each.
func (g *Generator) Players(teamID int64, team TeamRoster) ([]models.Player, error) {
	if len(team.Players) < SquadSize {
		return nil, fmt.Errorf("team %s has %d names, need %d", team.Name, len(team.Players), SquadSize)
	}
	out := make([]models.Player, 0, SquadSize)
	for i, name := range team.Players[:SquadSize] {
		out = append(out, models.Player{
			TeamID:   teamID,
			Name:     name,
			Position: roster.Positions[i/roster.PerCategory],
			Cost:     g.PlayerCost(),
		})
	}
	return out, nil
}

const (
	AdminName     = "Admin"
	AdminEmail    = "admin@gmail.com"
	AdminPassword = "admin123"
)

// Users builds count managers, optionally preceded by the admin account.
func Users(count int, password string, includeAdmin bool) []models.User {
	out := make([]models.User, 0, count+1)
	if includeAdmin {
		out = append(out, newUser(AdminName, AdminEmail, AdminPassword))
	}
	for i := 1; i <= count; i++ {
		out = append(out, newUser(fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@fantasy.com", i), password))
	}
	return out
}

func newUser(name, email, password string) models.User {
	return models.User{
		Name:         name,
		Email:        email,
		Password:     password,
		PasswordHash: hashutil.HashPassword(password),
	}
}
