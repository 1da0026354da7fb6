package main

import (
	"context"
	"fmt"

	"github.com/hetulpatel/FantasySeed/internal/cache"
	"github.com/hetulpatel/FantasySeed/internal/config"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[leaderboard] config: %v", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
	limit := cfg.Tools.LeaderboardLimit

	entries, source, err := fromCache(ctx, cfg.Redis, limit)
	if err != nil {
		logging.Errorf("[leaderboard] redis read failed, using sqlite: %v", err)
	}
	if len(entries) == 0 {
		entries, err = fromStore(ctx, cfg.SQLitePath, limit)
		if err != nil {
			logging.Fatalf("[leaderboard] %v", err)
		}
		source = "sqlite"
	}

	fmt.Printf("Leaderboard (%s)\n", source)
	for _, e := range entries {
		fmt.Printf("%3d. %-20s %6d\n", e.Rank, e.UserName, e.TotalPoints)
	}
}

func fromCache(ctx context.Context, cfg config.Redis, limit int) ([]models.LeaderboardEntry, string, error) {
	if cfg.Addr == "" {
		return nil, "", nil
	}
	lb, err := cache.NewRedisLeaderboard(cfg.Addr, cfg.Password, cfg.DB, "")
	if err != nil {
		return nil, "", err
	}
	defer lb.Close()
	entries, err := lb.Top(ctx, limit)
	return entries, "redis", err
}

func fromStore(ctx context.Context, path string, limit int) ([]models.LeaderboardEntry, error) {
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer store.Close()
	return store.Leaderboard(ctx, limit)
}
