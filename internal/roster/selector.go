// Package roster picks a fixed number of candidates per category under a cost budget.
//
// The selector is a single greedy pass, not a knapsack solver: it starts from the two
// cheapest candidates of every category and swaps in the first affordable alternative it
// meets while walking each category in shuffled order.
package roster

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Selector builds budget-constrained selections. It is not safe for concurrent use
// because it owns its random source.
type Selector struct {
	rng        *rand.Rand
	categories []Category
}

// NewSelector returns a selector that shuffles with rng and walks categories in the given
// order. A nil rng falls back to a time-seeded source; no categories means the pool's keys
// in sorted order.
func NewSelector(rng *rand.Rand, categories ...Category) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not security sensitive
	}
	return &Selector{rng: rng, categories: append([]Category(nil), categories...)}
}

// Select returns PerCategory candidates for every category whose total cost stays within
// max(budget, floor cost).
func (s *Selector) Select(pool Pool, budget int) (Selection, error) {
	categories := s.categoryOrder(pool)
	if len(categories) == 0 {
		return Selection{}, ErrNoCategories
	}
	if err := checkPool(pool, categories); err != nil {
		return Selection{}, err
	}

	sel := Selection{
		Categories:      categories,
		Picks:           make(map[Category][]Candidate, len(categories)),
		RequestedBudget: budget,
	}
	selected := make(map[int64]bool, len(categories)*PerCategory)
	for _, cat := range categories {
		pair := floorPair(pool[cat])
		sel.Picks[cat] = pair
		for _, c := range pair {
			selected[c.ID] = true
			sel.FloorCost += c.Cost
		}
	}

	sel.Budget = budget
	if budget < sel.FloorCost {
		sel.Budget = raiseToFloor(sel.FloorCost)
		sel.BudgetRaised = true
	}
	sel.TotalCost = sel.FloorCost

	for _, cat := range categories {
		s.upgrade(&sel, cat, pool[cat], selected)
	}
	return sel, nil
}

// raiseToFloor is the leniency policy for budgets below the cheapest feasible roster: a
// selection is always produced, so the ceiling becomes the floor cost.
func raiseToFloor(floorCost int) int {
	return floorCost
}

// upgrade makes one pass over a shuffled copy of the category pool, replacing each held
// pick at most once with the first unselected candidate that fits the budget.
func (s *Selector) upgrade(sel *Selection, cat Category, candidates []Candidate, selected map[int64]bool) {
	shuffled := append([]Candidate(nil), candidates...)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	picks := sel.Picks[cat]
	for i := range picks {
		held := picks[i]
		for _, next := range shuffled {
			if next.ID == held.ID || selected[next.ID] {
				continue
			}
			total := sel.TotalCost - held.Cost + next.Cost
			if total > sel.Budget {
				continue
			}
			picks[i] = next
			delete(selected, held.ID)
			selected[next.ID] = true
			sel.TotalCost = total
			sel.Swaps++
			break
		}
	}
}

func (s *Selector) categoryOrder(pool Pool) []Category {
	if len(s.categories) > 0 {
		return append([]Category(nil), s.categories...)
	}
	out := make([]Category, 0, len(pool))
	for cat := range pool {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func checkPool(pool Pool, categories []Category) error {
	seen := make(map[int64]Category)
	for _, cat := range categories {
		candidates := pool[cat]
		if len(candidates) < PerCategory {
			return fmt.Errorf("%w: %s has %d, need %d", ErrInsufficientCandidates, cat, len(candidates), PerCategory)
		}
		for _, c := range candidates {
			if prev, ok := seen[c.ID]; ok {
				return fmt.Errorf("%w: %d in %s and %s", ErrDuplicateCandidate, c.ID, prev, cat)
			}
			seen[c.ID] = cat
		}
	}
	return nil
}

// floorPair returns the PerCategory cheapest candidates, keeping generation order on ties.
func floorPair(candidates []Candidate) []Candidate {
	sorted := append([]Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Cost < sorted[j].Cost })
	return sorted[:PerCategory]
}

// PoolFrom groups candidates by their category, preserving input order.
func PoolFrom(candidates []Candidate) Pool {
	pool := make(Pool)
	for _, c := range candidates {
		pool[c.Category] = append(pool[c.Category], c)
	}
	return pool
}
