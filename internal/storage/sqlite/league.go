package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/roster"
)

// InsertTeams stores the clubs and returns them with their generated IDs.
func (s *Store) InsertTeams(ctx context.Context, names []string) ([]models.Team, error) {
	out := make([]models.Team, 0, len(names))
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO Teams (Name) VALUES (?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, name := range names {
			id, err := insertID(ctx, stmt, name)
			if err != nil {
				return fmt.Errorf("insert team %s: %w", name, err)
			}
			out = append(out, models.Team{ID: id, Name: name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InsertPlayers stores players and fills in their IDs.
func (s *Store) InsertPlayers(ctx context.Context, players []models.Player) ([]models.Player, error) {
	out := append([]models.Player(nil), players...)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO Players (TeamId, Name, Position, Cost, TotalPoints)
VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := range out {
			p := &out[i]
			id, err := insertID(ctx, stmt, p.TeamID, p.Name, string(p.Position), p.Cost, p.TotalPoints)
			if err != nil {
				return fmt.Errorf("insert player %s: %w", p.Name, err)
			}
			p.ID = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InsertUsers stores managers and fills in their IDs.
func (s *Store) InsertUsers(ctx context.Context, users []models.User) ([]models.User, error) {
	out := append([]models.User(nil), users...)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO Users (Name, Email, PasswordHash, TotalPoints)
VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := range out {
			u := &out[i]
			id, err := insertID(ctx, stmt, u.Name, u.Email, u.PasswordHash, u.TotalPoints)
			if err != nil {
				return fmt.Errorf("insert user %s: %w", u.Email, err)
			}
			u.ID = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Players returns every player ordered by ID.
func (s *Store) Players(ctx context.Context) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT Id, TeamId, Name, Position, Cost, TotalPoints FROM Players ORDER BY Id`)
	if err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}
	defer rows.Close()

	var out []models.Player
	for rows.Next() {
		var (
			p        models.Player
			position string
		)
		if err := rows.Scan(&p.ID, &p.TeamID, &p.Name, &position, &p.Cost, &p.TotalPoints); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		p.Position = roster.Category(position)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Users returns every manager ordered by ID. Password stays empty.
func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT Id, Name, Email, PasswordHash, TotalPoints FROM Users ORDER BY Id`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.TotalPoints); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UserIDs returns every manager ID in ascending order.
func (s *Store) UserIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT Id FROM Users ORDER BY Id`)
	if err != nil {
		return nil, fmt.Errorf("select user ids: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func insertID(ctx context.Context, stmt *sql.Stmt, args ...any) (int64, error) {
	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
