// Package scoring turns box-score stat lines into fantasy points and aggregates them per
// roster and round.
package scoring

import (
	"fmt"
	"sort"
)

const (
	WinBonus     = 5
	LossPenalty  = -3
	StealWeight  = 2
	BlockWeight  = 2
	RosterSize   = 10
	BenchCounted = 3
)

// StatLine is one player's box score for one round.
type StatLine struct {
	Points    int  `json:"points"`
	Rebounds  int  `json:"rebounds"`
	Assists   int  `json:"assists"`
	Steals    int  `json:"steals"`
	Blocks    int  `json:"blocks"`
	Turnovers int  `json:"turnovers"`
	TeamWin   bool `json:"team_win"`
}

// Validate rejects negative counting stats.
func (s StatLine) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"points", s.Points},
		{"rebounds", s.Rebounds},
		{"assists", s.Assists},
		{"steals", s.Steals},
		{"blocks", s.Blocks},
		{"turnovers", s.Turnovers},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeStat, f.name, f.value)
		}
	}
	return nil
}

// Result is "W" for a team win and "L" otherwise.
func (s StatLine) Result() string {
	if s.TeamWin {
		return "W"
	}
	return "L"
}

// FantasyPoints scores a stat line. The result may be negative.
func FantasyPoints(s StatLine) int {
	score := s.Points + s.Rebounds + s.Assists
	score += StealWeight*s.Steals + BlockWeight*s.Blocks
	score -= s.Turnovers
	if s.TeamWin {
		score += WinBonus
	} else {
		score += LossPenalty
	}
	return score
}

// Entry is one rostered player's fantasy points for a round.
type Entry struct {
	PlayerID int64
	Points   int
	OnCourt  bool
}

// TeamScore sums every starter plus the best BenchCounted bench players. With fewer bench
// players than that, the whole bench counts.
func TeamScore(entries []Entry) int {
	total := 0
	bench := make([]int, 0, len(entries))
	for _, e := range entries {
		if e.OnCourt {
			total += e.Points
			continue
		}
		bench = append(bench, e.Points)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(bench)))
	if len(bench) > BenchCounted {
		bench = bench[:BenchCounted]
	}
	for _, p := range bench {
		total += p
	}
	return total
}

// RoundScore is TeamScore for a complete roster. An incomplete roster scores zero for the
// round rather than failing.
func RoundScore(entries []Entry) int {
	if !Complete(entries) {
		return incompleteRosterScore
	}
	return TeamScore(entries)
}

const incompleteRosterScore = 0

// Complete reports whether entries form a full roster.
func Complete(entries []Entry) bool {
	return len(entries) == RosterSize
}

// Counted reports, per player, whether their points contributed to TeamScore.
func Counted(entries []Entry) map[int64]bool {
	out := make(map[int64]bool, len(entries))
	bench := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.OnCourt {
			out[e.PlayerID] = true
			continue
		}
		out[e.PlayerID] = false
		bench = append(bench, e)
	}
	sort.SliceStable(bench, func(i, j int) bool { return bench[i].Points > bench[j].Points })
	for i := 0; i < len(bench) && i < BenchCounted; i++ {
		out[bench[i].PlayerID] = true
	}
	return out
}
