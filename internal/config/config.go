// Package config reads the seeding and worker settings from the environment, loading a
// .env file first when one exists.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hetulpatel/FantasySeed/internal/league"
)

const (
	DefaultRoundScoresTopic = "fantasy.round_scores"
	DefaultPlayerStatsTopic = "fantasy.player_stats"
)

// Seed controls what the seeder fabricates.
type Seed struct {
	Users        int
	Rounds       int
	RandomSeed   int64
	TotalBudget  int
	Budget       league.Range
	Cost         league.Range
	IncludeAdmin bool
	UserPassword string
	CreateTables bool
	WaitTimeout  time.Duration
}

// Redis is optional; an empty Addr disables the leaderboard cache.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Kafka is optional for the seeder; an empty Brokers list disables publishing.
type Kafka struct {
	Brokers          []string
	RoundScoresTopic string
	PlayerStatsTopic string
	WorkerGroup      string
	WorkerCount      int
}

// Tools holds settings for the one-shot maintenance commands. Round 0 means the last
// completed round; AllRounds rescores every completed round.
type Tools struct {
	Round            int
	AllRounds        bool
	LeaderboardLimit int
}

type Config struct {
	SQLitePath string
	LogLevel   string
	Seed       Seed
	Redis      Redis
	Kafka      Kafka
	Tools      Tools
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from the environment without validating it.
func FromEnv() *Config {
	return &Config{
		SQLitePath: os.Getenv("SQLITE_PATH"),
		LogLevel:   envString("LOG_LEVEL", "info"),
		Seed: Seed{
			Users:        envInt("SEED_USERS", 100),
			Rounds:       envInt("SEED_ROUNDS", 20),
			RandomSeed:   envInt64("SEED_RANDOM_SEED", 0),
			TotalBudget:  envInt("SEED_TOTAL_BUDGET", 100),
			Budget:       league.Range{Min: envInt("SEED_BUDGET_MIN", 80), Max: envInt("SEED_BUDGET_MAX", 100)},
			Cost:         league.Range{Min: envInt("SEED_COST_MIN", 5), Max: envInt("SEED_COST_MAX", 25)},
			IncludeAdmin: envBool("SEED_INCLUDE_ADMIN", false),
			UserPassword: envString("SEED_USER_PASSWORD", "user123"),
			CreateTables: envBool("SEED_CREATE_TABLES", true),
			WaitTimeout:  envDuration("SEED_WAIT_TIMEOUT", 30*time.Second),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		Kafka: Kafka{
			Brokers:          splitList(os.Getenv("KAFKA_BROKERS")),
			RoundScoresTopic: envString("ROUND_SCORES_KAFKA_TOPIC", DefaultRoundScoresTopic),
			PlayerStatsTopic: envString("PLAYER_STATS_KAFKA_TOPIC", DefaultPlayerStatsTopic),
			WorkerGroup:      envString("STATS_WORKER_GROUP", "stats-worker"),
			WorkerCount:      envInt("STATS_WORKER_CONCURRENCY", 1),
		},
		Tools: Tools{
			Round:            envInt("CALCULATE_ROUND", 0),
			AllRounds:        envBool("CALCULATE_ALL_ROUNDS", false),
			LeaderboardLimit: envInt("LEADERBOARD_LIMIT", 10),
		},
	}
}

// Validate rejects settings the seeder cannot honour.
func (c *Config) Validate() error {
	s := c.Seed
	switch {
	case s.Users < 0:
		return fmt.Errorf("%w: SEED_USERS must not be negative (got %d)", ErrInvalidConfig, s.Users)
	case s.Rounds <= 0:
		return fmt.Errorf("%w: SEED_ROUNDS must be positive (got %d)", ErrInvalidConfig, s.Rounds)
	case s.TotalBudget <= 0:
		return fmt.Errorf("%w: SEED_TOTAL_BUDGET must be positive (got %d)", ErrInvalidConfig, s.TotalBudget)
	case s.Budget.Min < 0 || s.Budget.Min > s.Budget.Max:
		return fmt.Errorf("%w: budget range [%d, %d]", ErrInvalidConfig, s.Budget.Min, s.Budget.Max)
	case s.Budget.Max > s.TotalBudget:
		return fmt.Errorf("%w: SEED_BUDGET_MAX %d exceeds SEED_TOTAL_BUDGET %d", ErrInvalidConfig, s.Budget.Max, s.TotalBudget)
	case s.Cost.Min < 0 || s.Cost.Min > s.Cost.Max:
		return fmt.Errorf("%w: cost range [%d, %d]", ErrInvalidConfig, s.Cost.Min, s.Cost.Max)
	case c.Tools.Round < 0:
		return fmt.Errorf("%w: CALCULATE_ROUND must not be negative (got %d)", ErrInvalidConfig, c.Tools.Round)
	case c.Kafka.WorkerCount <= 0:
		return fmt.Errorf("%w: STATS_WORKER_CONCURRENCY must be positive (got %d)", ErrInvalidConfig, c.Kafka.WorkerCount)
	}
	return nil
}

// CurrentRound is the round the application opens after seeding.
func (s Seed) CurrentRound() int {
	return s.Rounds + 1
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
