package roster

import "errors"

var (
	ErrNoCategories           = errors.New("roster: no categories to select from")
	ErrInsufficientCandidates = errors.New("roster: insufficient candidates in category")
	ErrDuplicateCandidate     = errors.New("roster: duplicate candidate id")
)
