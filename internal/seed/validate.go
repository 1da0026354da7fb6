package seed

import (
	"fmt"
	"sort"

	"github.com/hetulpatel/FantasySeed/internal/roster"
	"github.com/hetulpatel/FantasySeed/internal/scoring"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

// Issue is one failed roster check.
type Issue struct {
	UserID  int64
	Round   int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("user %d, round %d: %s", i.UserID, i.Round, i.Message)
}

// Report is the outcome of auditing every stored roster.
type Report struct {
	Checked int
	Issues  []Issue
}

// OK reports whether every roster passed.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

type rosterKey struct {
	userID int64
	round  int
}

// Validate audits active roster rows. Every user must have a roster for rounds 1..rounds,
// and every roster must hold scoring.RosterSize players with roster.PerCategory per
// position. A roster's cost may not exceed the round's TotalBudget and must equal its
// recorded UsedBudget. userIDs may be nil to audit only the rosters present.
func Validate(rows []sqlite.RosterRow, userIDs []int64, rounds int) Report {
	groups := make(map[rosterKey][]sqlite.RosterRow)
	for _, r := range rows {
		k := rosterKey{r.UserID, r.Round}
		groups[k] = append(groups[k], r)
	}
	for _, id := range userIDs {
		for round := 1; round <= rounds; round++ {
			k := rosterKey{id, round}
			if _, ok := groups[k]; !ok {
				groups[k] = nil
			}
		}
	}

	keys := make([]rosterKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].userID != keys[j].userID {
			return keys[i].userID < keys[j].userID
		}
		return keys[i].round < keys[j].round
	})

	var report Report
	for _, k := range keys {
		report.Checked++
		report.Issues = append(report.Issues, checkRoster(k, groups[k])...)
	}
	return report
}

func checkRoster(k rosterKey, rows []sqlite.RosterRow) []Issue {
	issue := func(format string, args ...any) Issue {
		return Issue{UserID: k.userID, Round: k.round, Message: fmt.Sprintf(format, args...)}
	}
	if len(rows) == 0 {
		return []Issue{issue("no roster")}
	}

	var out []Issue
	if len(rows) != scoring.RosterSize {
		out = append(out, issue("expected %d players, got %d", scoring.RosterSize, len(rows)))
	}

	counts := make(map[roster.Category]int)
	cost := 0
	for _, r := range rows {
		counts[r.Position]++
		cost += r.Cost
	}
	for _, pos := range roster.Positions {
		if counts[pos] != roster.PerCategory {
			out = append(out, issue("expected %d %s players, got %d", roster.PerCategory, pos, counts[pos]))
		}
	}

	budget := rows[0]
	switch {
	case !budget.HasBudget:
		out = append(out, issue("no budget row"))
	case cost > budget.TotalBudget:
		out = append(out, issue("total cost %d exceeds budget %d", cost, budget.TotalBudget))
	case cost != budget.UsedBudget:
		out = append(out, issue("total cost %d does not match used budget %d", cost, budget.UsedBudget))
	}
	return out
}
