package main

import (
	"context"

	"github.com/hetulpatel/FantasySeed/internal/config"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[sqlite] config: %v", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		logging.Fatalf("[sqlite] open: %v", err)
	}
	defer store.Close()

	report, err := store.ClearTables(context.Background())
	if err != nil {
		logging.Fatalf("[sqlite] clear tables: %v", err)
	}
	for _, table := range report.Cleared {
		logging.Infof("[sqlite] cleared %s", table)
	}
	for _, table := range report.Skipped {
		logging.Infof("[sqlite] skipped %s (table does not exist)", table)
	}
	logging.Infof("[sqlite] tables cleared at %s", store.Path())
}
