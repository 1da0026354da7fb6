package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/FantasySeed/internal/league"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"SEED_USERS", "SEED_ROUNDS", "SEED_BUDGET_MIN", "KAFKA_BROKERS", "REDIS_ADDR", "SEED_CREATE_TABLES", "LEADERBOARD_LIMIT", "CALCULATE_ROUND"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 100, cfg.Seed.Users)
	require.Equal(t, 20, cfg.Seed.Rounds)
	require.Equal(t, 21, cfg.Seed.CurrentRound())
	require.Equal(t, league.Range{Min: 80, Max: 100}, cfg.Seed.Budget)
	require.Equal(t, league.Range{Min: 5, Max: 25}, cfg.Seed.Cost)
	require.True(t, cfg.Seed.CreateTables)
	require.Equal(t, 30*time.Second, cfg.Seed.WaitTimeout)
	require.Empty(t, cfg.Kafka.Brokers)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, DefaultRoundScoresTopic, cfg.Kafka.RoundScoresTopic)
	require.Equal(t, 10, cfg.Tools.LeaderboardLimit)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SEED_USERS", "5")
	t.Setenv("SEED_ROUNDS", "3")
	t.Setenv("SEED_RANDOM_SEED", "42")
	t.Setenv("SEED_INCLUDE_ADMIN", "true")
	t.Setenv("SEED_WAIT_TIMEOUT", "2s")
	t.Setenv("KAFKA_BROKERS", " a:9092, ,b:9092 ")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := FromEnv()
	require.Equal(t, 5, cfg.Seed.Users)
	require.Equal(t, 3, cfg.Seed.Rounds)
	require.Equal(t, int64(42), cfg.Seed.RandomSeed)
	require.True(t, cfg.Seed.IncludeAdmin)
	require.Equal(t, 2*time.Second, cfg.Seed.WaitTimeout)
	require.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, 0, cfg.Redis.DB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rounds", func(c *Config) { c.Seed.Rounds = 0 }},
		{"negative users", func(c *Config) { c.Seed.Users = -1 }},
		{"inverted budget", func(c *Config) { c.Seed.Budget = league.Range{Min: 90, Max: 80} }},
		{"budget above total", func(c *Config) { c.Seed.Budget.Max = 120 }},
		{"negative round", func(c *Config) { c.Tools.Round = -2 }},
		{"inverted cost", func(c *Config) { c.Seed.Cost = league.Range{Min: 30, Max: 5} }},
		{"no workers", func(c *Config) { c.Kafka.WorkerCount = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEED_ROUNDS=7\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv never overrides variables that are already set.
	t.Setenv("SEED_ROUNDS", "")
	require.NoError(t, os.Unsetenv("SEED_ROUNDS"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Seed.Rounds)
}

func validConfig() *Config {
	return &Config{
		Seed: Seed{
			Users:       10,
			Rounds:      2,
			TotalBudget: 100,
			Budget:      league.Range{Min: 80, Max: 100},
			Cost:        league.Range{Min: 5, Max: 25},
		},
		Kafka: Kafka{WorkerCount: 1},
	}
}
