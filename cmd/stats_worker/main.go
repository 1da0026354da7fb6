package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/hetulpatel/FantasySeed/internal/config"
	"github.com/hetulpatel/FantasySeed/internal/kafka"
	"github.com/hetulpatel/FantasySeed/internal/logging"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
	"github.com/hetulpatel/FantasySeed/internal/workers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[stats-worker] config: %v", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	brokers := kafka.Brokers(cfg.Kafka.Brokers...)
	topic := cfg.Kafka.PlayerStatsTopic
	group := cfg.Kafka.WorkerGroup

	waitCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		logging.Fatalf("[stats-worker] wait for broker: %v", err)
	}
	cancel()

	ensureCtx, cancelEnsure := context.WithTimeout(ctx, 30*time.Second)
	if err := kafka.EnsureTopics(ensureCtx, brokers, topic); err != nil {
		logging.Errorf("[stats-worker] ensure topic warning: %v", err)
	}
	cancelEnsure()

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		logging.Fatalf("[stats-worker] open sqlite: %v", err)
	}
	defer store.Close()

	processor := workers.NewProcessor(store)
	logging.Infof("[stats-worker] consuming %s with group %s (%d workers)", topic, group, cfg.Kafka.WorkerCount)
	workers.Run(ctx, brokers, topic, group, cfg.Kafka.WorkerCount, processor.Handle)
}
