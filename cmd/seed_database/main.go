package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hetulpatel/FantasySeed/internal/cache"
	"github.com/hetulpatel/FantasySeed/internal/config"
	"github.com/hetulpatel/FantasySeed/internal/kafka"
	"github.com/hetulpatel/FantasySeed/internal/league"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/queue"
	"github.com/hetulpatel/FantasySeed/internal/seed"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[seed] config: %v", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		logging.Fatalf("[seed] open sqlite: %v", err)
	}
	defer store.Close()

	fmt.Println("Starting fantasy league seeding...")
	fmt.Printf("Database: %s\n", store.Path())
	fmt.Printf("Users: %d\n", cfg.Seed.Users)
	fmt.Printf("Teams: %d\n", len(league.Teams))
	fmt.Printf("Total players: %d\n", len(league.Teams)*league.SquadSize)
	fmt.Printf("Rounds: %d (current round set to %d)\n", cfg.Seed.Rounds, cfg.Seed.CurrentRound())

	var opts []seed.Option
	if len(cfg.Kafka.Brokers) > 0 {
		pub, err := queue.Connect(ctx, kafka.Brokers(cfg.Kafka.Brokers...), cfg.Kafka.RoundScoresTopic, cfg.Kafka.PlayerStatsTopic)
		if err != nil {
			logging.Fatalf("[seed] kafka: %v", err)
		}
		defer pub.Close()
		opts = append(opts, seed.WithPublisher(pub))
		logging.Infof("[seed] publishing to %s and %s", cfg.Kafka.PlayerStatsTopic, cfg.Kafka.RoundScoresTopic)
	}
	if cfg.Redis.Addr != "" {
		lb, err := cache.NewRedisLeaderboard(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, "")
		if err != nil {
			logging.Fatalf("[seed] redis: %v", err)
		}
		defer lb.Close()
		opts = append(opts, seed.WithLeaderboard(lb))
	}

	sum, err := seed.New(store, cfg.Seed, opts...).Run(ctx)
	if err != nil {
		logging.Fatalf("[seed] %v", err)
	}
	sum.Print(os.Stdout)
	if !sum.Validation.OK() {
		fmt.Println("\nSeeding finished with validation warnings")
		return
	}
	fmt.Println("\nSeeding finished")
}
