package sqlite

import (
	"context"
	"fmt"

	"github.com/hetulpatel/FantasySeed/internal/models"
)

// Leaderboard ranks managers by total points. Ties share a rank and the next distinct
// total takes the following rank. limit <= 0 returns everyone.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT Id, Name, TotalPoints FROM Users
ORDER BY TotalPoints DESC, Id
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select leaderboard: %w", err)
	}
	defer rows.Close()

	var out []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.UserName, &e.TotalPoints); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return models.RankEntries(out), nil
}
