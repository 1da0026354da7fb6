package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hetulpatel/FantasySeed/internal/config"
	"github.com/hetulpatel/FantasySeed/internal/kafka"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/models"
	"github.com/hetulpatel/FantasySeed/internal/queue"
	"github.com/hetulpatel/FantasySeed/internal/rounds"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[calculate] config: %v", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		logging.Fatalf("[calculate] open sqlite: %v", err)
	}
	defer store.Close()

	first, last, err := roundRange(ctx, store, cfg.Tools)
	if err != nil {
		logging.Fatalf("[calculate] %v", err)
	}

	var pub rounds.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := queue.Connect(ctx, kafka.Brokers(cfg.Kafka.Brokers...), cfg.Kafka.RoundScoresTopic, cfg.Kafka.PlayerStatsTopic)
		if err != nil {
			logging.Fatalf("[calculate] kafka: %v", err)
		}
		defer p.Close()
		pub = p
	}

	calc := rounds.NewCalculator(store, pub, models.NewRunID())
	results, err := calc.CalculateRange(ctx, first, last)
	if err != nil {
		logging.Fatalf("[calculate] %v", err)
	}
	for _, res := range results {
		total := 0
		for _, s := range res.Scores {
			total += s.Points
		}
		fmt.Printf("Round %d: %d managers scored, %d incomplete, %d points awarded\n",
			res.Round, len(res.Scores), len(res.Incomplete), total)
	}
}

// roundRange picks the rounds to score: the configured one, every completed round, or by
// default the round before the current one.
func roundRange(ctx context.Context, store *sqlite.Store, tools config.Tools) (int, int, error) {
	if tools.Round > 0 && !tools.AllRounds {
		return tools.Round, tools.Round, nil
	}
	current, ok, err := store.CurrentRound(ctx)
	if err != nil {
		return 0, 0, err
	}
	if !ok || current <= 1 {
		return 0, 0, fmt.Errorf("no completed round to score (current round %d)", current)
	}
	if tools.AllRounds {
		return 1, current - 1, nil
	}
	return current - 1, current - 1, nil
}
