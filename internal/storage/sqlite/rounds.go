package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/scoring"
)

// InsertUserRoundTeams stores each manager's per-round budget rows.
func (s *Store) InsertUserRoundTeams(ctx context.Context, rows []models.UserRoundTeam) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO UserRoundTeams (UserId, Round, TotalBudget, UsedBudget, IsLocked)
VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range rows {
			if _, err := stmt.ExecContext(ctx, r.UserID, r.Round, r.TotalBudget, r.UsedBudget, r.IsLocked); err != nil {
				return fmt.Errorf("insert round team user=%d round=%d: %w", r.UserID, r.Round, err)
			}
		}
		return nil
	})
}

// InsertFantasyTeams stores roster rows.
func (s *Store) InsertFantasyTeams(ctx context.Context, entries []models.FantasyTeamEntry) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO FantasyTeams (UserId, PlayerId, Round, IsActive, IsOnCourt)
VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, e.UserID, e.PlayerID, e.Round, e.IsActive, e.IsOnCourt); err != nil {
				return fmt.Errorf("insert fantasy team user=%d player=%d round=%d: %w", e.UserID, e.PlayerID, e.Round, err)
			}
		}
		return nil
	})
}

const playerRoundPointsUpsertSQL = `
INSERT INTO PlayerRoundPoints (
	PlayerId, Round, Points, Rebounds, Assists, Steals, Blocks, Turnovers,
	TeamWin, FantasyPoints, Score, TotalPoints
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(PlayerId, Round) DO UPDATE SET
	Points=excluded.Points,
	Rebounds=excluded.Rebounds,
	Assists=excluded.Assists,
	Steals=excluded.Steals,
	Blocks=excluded.Blocks,
	Turnovers=excluded.Turnovers,
	TeamWin=excluded.TeamWin,
	FantasyPoints=excluded.FantasyPoints,
	Score=excluded.Score,
	TotalPoints=excluded.TotalPoints;
`

// UpsertPlayerRoundPoints inserts or replaces stat lines keyed by (player, round).
func (s *Store) UpsertPlayerRoundPoints(ctx context.Context, rows []models.PlayerRoundPoints) error {
	if len(rows) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, playerRoundPointsUpsertSQL)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range rows {
			st := r.Stats
			_, err := stmt.ExecContext(ctx,
				r.PlayerID, r.Round,
				st.Points, st.Rebounds, st.Assists, st.Steals, st.Blocks, st.Turnovers,
				st.TeamWin, r.FantasyPoints, st.Result(), r.FantasyPoints,
			)
			if err != nil {
				return fmt.Errorf("upsert player points player=%d round=%d: %w", r.PlayerID, r.Round, err)
			}
		}
		return nil
	})
}

// PlayerRoundPoints returns the stored stat line for a player and round.
func (s *Store) PlayerRoundPoints(ctx context.Context, playerID int64, round int) (*models.PlayerRoundPoints, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT Points, Rebounds, Assists, Steals, Blocks, Turnovers, TeamWin, FantasyPoints
FROM PlayerRoundPoints WHERE PlayerId = ? AND Round = ?`, playerID, round)

	out := models.PlayerRoundPoints{PlayerID: playerID, Round: round}
	st := &out.Stats
	err := row.Scan(&st.Points, &st.Rebounds, &st.Assists, &st.Steals, &st.Blocks, &st.Turnovers, &st.TeamWin, &out.FantasyPoints)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select player points: %w", err)
	}
	return &out, true, nil
}

// RosterEntries returns, per manager, the active roster for a round joined with each
// player's fantasy points. Players without a stat line for the round are left out.
func (s *Store) RosterEntries(ctx context.Context, round int) (map[int64][]scoring.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT ft.UserId, ft.PlayerId, ft.IsOnCourt, prp.FantasyPoints
FROM FantasyTeams ft
JOIN PlayerRoundPoints prp ON prp.PlayerId = ft.PlayerId AND prp.Round = ft.Round
WHERE ft.Round = ? AND ft.IsActive = 1
ORDER BY ft.UserId, ft.Id`, round)
	if err != nil {
		return nil, fmt.Errorf("select roster entries: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]scoring.Entry)
	for rows.Next() {
		var (
			userID int64
			e      scoring.Entry
		)
		if err := rows.Scan(&userID, &e.PlayerID, &e.OnCourt, &e.Points); err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		out[userID] = append(out[userID], e)
	}
	return out, rows.Err()
}

// UpsertUserRoundPoints inserts or replaces manager scores keyed by (user, round).
func (s *Store) UpsertUserRoundPoints(ctx context.Context, rows []models.UserRoundPoints) error {
	if len(rows) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO UserRoundPoints (UserId, Round, Points) VALUES (?, ?, ?)
ON CONFLICT(UserId, Round) DO UPDATE SET Points=excluded.Points`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range rows {
			if _, err := stmt.ExecContext(ctx, r.UserID, r.Round, r.Points); err != nil {
				return fmt.Errorf("upsert user points user=%d round=%d: %w", r.UserID, r.Round, err)
			}
		}
		return nil
	})
}

// RefreshUserTotals recomputes Users.TotalPoints from UserRoundPoints.
func (s *Store) RefreshUserTotals(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
UPDATE Users SET TotalPoints = COALESCE(
	(SELECT SUM(Points) FROM UserRoundPoints WHERE UserRoundPoints.UserId = Users.Id), 0)`)
	if err != nil {
		return fmt.Errorf("refresh user totals: %w", err)
	}
	return nil
}

// RefreshPlayerTotals recomputes Players.TotalPoints from PlayerRoundPoints, for the given
// players or for everyone when none are given.
func (s *Store) RefreshPlayerTotals(ctx context.Context, playerIDs ...int64) error {
	query := `
UPDATE Players SET TotalPoints = COALESCE(
	(SELECT SUM(FantasyPoints) FROM PlayerRoundPoints WHERE PlayerRoundPoints.PlayerId = Players.Id), 0)`
	args := make([]any, 0, len(playerIDs))
	if len(playerIDs) > 0 {
		query += ` WHERE Id IN (?` + strings.Repeat(`,?`, len(playerIDs)-1) + `)`
		for _, id := range playerIDs {
			args = append(args, id)
		}
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("refresh player totals: %w", err)
	}
	return nil
}

// SetCurrentRound replaces the single CurrentRound row.
func (s *Store) SetCurrentRound(ctx context.Context, round int) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM CurrentRound`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO CurrentRound (RoundNumber) VALUES (?)`, round)
		return err
	})
}

// CurrentRound returns the open round, if one is set.
func (s *Store) CurrentRound(ctx context.Context) (int, bool, error) {
	var round int
	err := s.db.QueryRowContext(ctx, `SELECT RoundNumber FROM CurrentRound ORDER BY Id DESC LIMIT 1`).Scan(&round)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select current round: %w", err)
	}
	return round, true, nil
}
