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

	if err := store.CreateTables(context.Background()); err != nil {
		logging.Fatalf("[sqlite] create tables: %v", err)
	}
	logging.Infof("[sqlite] tables created at %s", store.Path())
}
