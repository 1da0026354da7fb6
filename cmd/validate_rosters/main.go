package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hetulpatel/FantasySeed/internal/config"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/seed"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[validate] config: %v", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		logging.Fatalf("[validate] open sqlite: %v", err)
	}
	defer store.Close()

	rows, err := store.RosterRows(ctx)
	if err != nil {
		logging.Fatalf("[validate] %v", err)
	}
	userIDs, err := store.UserIDs(ctx)
	if err != nil {
		logging.Fatalf("[validate] %v", err)
	}
	completed := 0
	if current, ok, err := store.CurrentRound(ctx); err != nil {
		logging.Fatalf("[validate] %v", err)
	} else if ok {
		completed = current - 1
	}

	report := seed.Validate(rows, userIDs, completed)
	if report.OK() {
		fmt.Printf("All %d rosters are valid\n", report.Checked)
		return
	}
	fmt.Printf("Validation errors (%d of %d rosters checked):\n", len(report.Issues), report.Checked)
	for _, issue := range report.Issues {
		fmt.Printf("  - %s\n", issue)
	}
	store.Close()
	os.Exit(1)
}
