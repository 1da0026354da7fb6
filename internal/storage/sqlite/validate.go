package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hetulpatel/FantasySeed/internal/roster"
)

// RosterRow is one active roster entry with the cost and budget needed to audit it.
type RosterRow struct {
	UserID      int64
	Round       int
	PlayerID    int64
	Position    roster.Category
	Cost        int
	HasBudget   bool
	TotalBudget int
	UsedBudget  int
}

// RosterRows returns every active roster entry ordered by manager, round and player.
func (s *Store) RosterRows(ctx context.Context) ([]RosterRow, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT ft.UserId, ft.Round, ft.PlayerId, p.Position, p.Cost, urt.TotalBudget, urt.UsedBudget
FROM FantasyTeams ft
JOIN Players p ON p.Id = ft.PlayerId
LEFT JOIN UserRoundTeams urt ON urt.UserId = ft.UserId AND urt.Round = ft.Round
WHERE ft.IsActive = 1
ORDER BY ft.UserId, ft.Round, ft.PlayerId`)
	if err != nil {
		return nil, fmt.Errorf("select roster rows: %w", err)
	}
	defer rows.Close()

	var out []RosterRow
	for rows.Next() {
		var (
			r            RosterRow
			position     string
			total, spent sql.NullInt64
		)
		if err := rows.Scan(&r.UserID, &r.Round, &r.PlayerID, &position, &r.Cost, &total, &spent); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		r.Position = roster.Category(position)
		r.HasBudget = total.Valid
		r.TotalBudget = int(total.Int64)
		r.UsedBudget = int(spent.Int64)
		out = append(out, r)
	}
	return out, rows.Err()
}
