package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	defaultPath = "data/app.db"
	dsnPragmas  = "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
)

// Tables in dependency order; clearing and dropping walk it backwards.
var Tables = []string{
	"Users",
	"Teams",
	"Players",
	"FantasyTeams",
	"PlayerRoundPoints",
	"UserRoundPoints",
	"UserRoundTeams",
	"CurrentRound",
}

// Store wraps a SQLite DB connection.
type Store struct {
	path string
	db   *sql.DB
}

// Open creates (if needed) and opens the SQLite database.
func Open(path string) (*Store, error) {
	if path == "" {
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := ensureWAL(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

func ensureWAL(db *sql.DB) error {
	const (
		maxAttempts = 5
		delay       = 200 * time.Millisecond
	)
	for i := 0; i < maxAttempts; i++ {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			if strings.Contains(err.Error(), "database is locked") {
				time.Sleep(delay)
				continue
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("database is locked after retries")
}

// Path returns the path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateTables ensures every fantasy table exists.
func (s *Store) CreateTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaSQL)
	return err
}

// DropTables removes every fantasy table.
func (s *Store) DropTables(ctx context.Context) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s;`, Tables[i])); err != nil {
			return fmt.Errorf("drop %s: %w", Tables[i], err)
		}
	}
	return nil
}

// ClearReport lists which tables were emptied and which did not exist.
type ClearReport struct {
	Cleared []string
	Skipped []string
}

// ClearTables deletes all rows, children before parents. Missing tables are skipped.
func (s *Store) ClearTables(ctx context.Context) (ClearReport, error) {
	var report ClearReport
	for i := len(Tables) - 1; i >= 0; i-- {
		table := Tables[i]
		ok, err := s.TableExists(ctx, table)
		if err != nil {
			return report, err
		}
		if !ok {
			report.Skipped = append(report.Skipped, table)
			continue
		}
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s;`, table)); err != nil {
			return report, fmt.Errorf("clear %s: %w", table, err)
		}
		report.Cleared = append(report.Cleared, table)
	}
	return report, nil
}

// TableExists checks sqlite_master for a table.
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	var found string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup table %s: %w", name, err)
	}
	return true, nil
}

// WaitForTables polls until the Users table exists or ctx ends.
func (s *Store) WaitForTables(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastErr error
	for {
		ok, err := s.TableExists(ctx, "Users")
		if err == nil && ok {
			return nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("waiting for tables: %w (last error: %v)", ctx.Err(), lastErr)
			}
			return fmt.Errorf("waiting for tables: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS Users (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT NOT NULL,
	Email TEXT NOT NULL UNIQUE,
	PasswordHash TEXT NOT NULL,
	TotalPoints INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS Teams (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS Players (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	TeamId INTEGER NOT NULL REFERENCES Teams(Id),
	Name TEXT NOT NULL,
	Position TEXT NOT NULL,
	Cost INTEGER NOT NULL DEFAULT 0,
	TotalPoints INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS FantasyTeams (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	UserId INTEGER NOT NULL REFERENCES Users(Id),
	PlayerId INTEGER NOT NULL REFERENCES Players(Id),
	Round INTEGER NOT NULL,
	IsActive INTEGER NOT NULL DEFAULT 1,
	IsOnCourt INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS FantasyTeams_user_round_idx ON FantasyTeams(UserId, Round);
CREATE TABLE IF NOT EXISTS PlayerRoundPoints (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	PlayerId INTEGER NOT NULL REFERENCES Players(Id),
	Round INTEGER NOT NULL,
	Points INTEGER NOT NULL DEFAULT 0,
	Rebounds INTEGER NOT NULL DEFAULT 0,
	Assists INTEGER NOT NULL DEFAULT 0,
	Steals INTEGER NOT NULL DEFAULT 0,
	Blocks INTEGER NOT NULL DEFAULT 0,
	Turnovers INTEGER NOT NULL DEFAULT 0,
	TeamWin INTEGER NOT NULL DEFAULT 0,
	FantasyPoints INTEGER NOT NULL DEFAULT 0,
	Score TEXT NOT NULL DEFAULT 'L',
	TotalPoints INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS PlayerRoundPoints_player_round_idx ON PlayerRoundPoints(PlayerId, Round);
CREATE TABLE IF NOT EXISTS UserRoundPoints (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	UserId INTEGER NOT NULL REFERENCES Users(Id),
	Round INTEGER NOT NULL,
	Points INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS UserRoundPoints_user_round_idx ON UserRoundPoints(UserId, Round);
CREATE TABLE IF NOT EXISTS UserRoundTeams (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	UserId INTEGER NOT NULL REFERENCES Users(Id),
	Round INTEGER NOT NULL,
	TotalBudget INTEGER NOT NULL DEFAULT 100,
	UsedBudget INTEGER NOT NULL DEFAULT 0,
	IsLocked INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS CurrentRound (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	RoundNumber INTEGER NOT NULL
);
`
