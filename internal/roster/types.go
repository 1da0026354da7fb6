package roster

// Category is a roster slot type. Every category holds exactly PerCategory picks.
type Category string

const (
	PointGuard    Category = "PG"
	ShootingGuard Category = "SG"
	SmallForward  Category = "SF"
	PowerForward  Category = "PF"
	Center        Category = "C"
)

// PerCategory is the number of candidates selected for each category.
const PerCategory = 2

// Positions lists the basketball categories in roster order.
var Positions = []Category{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// Candidate is a cost-bearing item eligible for selection.
type Candidate struct {
	ID       int64
	Category Category
	Cost     int
}

// Pool maps each category to its candidates in generation order.
type Pool map[Category][]Candidate

// Slot is one lineup position produced from a Selection.
type Slot struct {
	Candidate Candidate
	OnCourt   bool
}

// Selection is a complete assignment of candidates to categories.
type Selection struct {
	Categories []Category
	Picks      map[Category][]Candidate

	// RequestedBudget is the budget passed by the caller; Budget is the ceiling actually applied.
	RequestedBudget int
	Budget          int
	BudgetRaised    bool

	FloorCost int
	TotalCost int
	Swaps     int
}

// Candidates returns every pick in category order.
func (s Selection) Candidates() []Candidate {
	out := make([]Candidate, 0, len(s.Categories)*PerCategory)
	for _, cat := range s.Categories {
		out = append(out, s.Picks[cat]...)
	}
	return out
}

// IDs returns the selected candidate IDs in category order.
func (s Selection) IDs() []int64 {
	picks := s.Candidates()
	ids := make([]int64, 0, len(picks))
	for _, c := range picks {
		ids = append(ids, c.ID)
	}
	return ids
}

// Lineup places the first pick of each category on court and the rest on the bench.
func (s Selection) Lineup() []Slot {
	out := make([]Slot, 0, len(s.Categories)*PerCategory)
	for _, cat := range s.Categories {
		for i, c := range s.Picks[cat] {
			out = append(out, Slot{Candidate: c, OnCourt: i == 0})
		}
	}
	return out
}

// Upgraded reports whether any pick was swapped away from the floor pairs.
func (s Selection) Upgraded() bool {
	return s.Swaps > 0
}
