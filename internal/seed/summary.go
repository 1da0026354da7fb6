package seed

import (
	"fmt"
	"io"
	"strings"

	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

const topN = 5

// Summary describes a finished (or partially finished) seeding run.
type Summary struct {
	RunID        string
	RandomSeed   int64
	Rounds       int
	CurrentRound int
	Cleared      sqlite.ClearReport

	Teams             int
	Players           int
	Users             []models.User
	Rosters           int
	RaisedBudgets     int
	UpgradedRosters   int
	StatLines         int
	IncompleteRosters int

	Validation Report
	Top        []models.LeaderboardEntry
}

// Print writes the human-readable report, including login credentials.
func (s *Summary) Print(w io.Writer) {
	rule := strings.Repeat("-", 50)
	fmt.Fprintln(w, rule)
	if s.Validation.OK() {
		fmt.Fprintf(w, "All %d rosters are valid\n", s.Validation.Checked)
	} else {
		fmt.Fprintf(w, "Validation errors (%d of %d rosters checked):\n", len(s.Validation.Issues), s.Validation.Checked)
		for _, issue := range s.Validation.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	}

	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  run %s, random seed %d\n", s.RunID, s.RandomSeed)
	fmt.Fprintf(w, "  %d users, %d teams, %d players\n", len(s.Users), s.Teams, s.Players)
	fmt.Fprintf(w, "  %d rounds of history, current round %d\n", s.Rounds, s.CurrentRound)
	fmt.Fprintf(w, "  %d rosters (%d raised budgets, %d upgraded past the floor)\n", s.Rosters, s.RaisedBudgets, s.UpgradedRosters)
	fmt.Fprintf(w, "  %d player stat lines, %d incomplete rosters scored zero\n", s.StatLines, s.IncompleteRosters)

	if len(s.Top) > 0 {
		fmt.Fprintln(w, "\nLeaders:")
		for _, e := range s.Top {
			fmt.Fprintf(w, "  %2d. %-20s %d\n", e.Rank, e.UserName, e.TotalPoints)
		}
	}

	fmt.Fprintln(w, "\nLogin credentials:")
	for _, u := range s.Users {
		fmt.Fprintf(w, "  %s / %s\n", u.Email, u.Password)
	}
}
