package cache

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/hetulpatel/FantasySeed/internal/models"
)

const DefaultLeaderboardKey = "fantasy:leaderboard"

// Leaderboard keeps manager totals in a sorted set for fast top-N reads.
type Leaderboard interface {
	Replace(ctx context.Context, entries []models.LeaderboardEntry) error
	Top(ctx context.Context, n int) ([]models.LeaderboardEntry, error)
	Close() error
}

type redisLeaderboard struct {
	client *redis.Client
	key    string
}

// NewRedisLeaderboard connects to addr. Manager names live in a hash next to the set.
func NewRedisLeaderboard(addr, password string, db int, key string) (Leaderboard, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if key == "" {
		key = DefaultLeaderboardKey
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisLeaderboard{client: client, key: key}, nil
}

func (c *redisLeaderboard) namesKey() string {
	return c.key + ":names"
}

// Replace swaps the whole board atomically.
func (c *redisLeaderboard) Replace(ctx context.Context, entries []models.LeaderboardEntry) error {
	if c == nil || c.client == nil {
		return nil
	}
	scores, names := members(entries)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key, c.namesKey())
		if len(scores) == 0 {
			return nil
		}
		pipe.ZAdd(ctx, c.key, scores...)
		pipe.HSet(ctx, c.namesKey(), names...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}

// Top returns the n best managers with dense ranks. n <= 0 returns everyone.
func (c *redisLeaderboard) Top(ctx context.Context, n int) ([]models.LeaderboardEntry, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	stop := int64(n - 1)
	if n <= 0 {
		stop = -1
	}
	zs, err := c.client.ZRevRangeWithScores(ctx, c.key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	if len(zs) == 0 {
		return nil, nil
	}
	fields := make([]string, 0, len(zs))
	for _, z := range zs {
		fields = append(fields, fmt.Sprint(z.Member))
	}
	names, err := c.client.HMGet(ctx, c.namesKey(), fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard names: %w", err)
	}
	return entriesFrom(zs, names)
}

func (c *redisLeaderboard) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func members(entries []models.LeaderboardEntry) ([]redis.Z, []any) {
	scores := make([]redis.Z, 0, len(entries))
	names := make([]any, 0, 2*len(entries))
	for _, e := range entries {
		id := strconv.FormatInt(e.UserID, 10)
		scores = append(scores, redis.Z{Score: float64(e.TotalPoints), Member: id})
		names = append(names, id, e.UserName)
	}
	return scores, names
}

func entriesFrom(zs []redis.Z, names []any) ([]models.LeaderboardEntry, error) {
	out := make([]models.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member := fmt.Sprint(z.Member)
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("leaderboard member %q: %w", member, err)
		}
		entry := models.LeaderboardEntry{UserID: id, TotalPoints: int(z.Score)}
		if i < len(names) {
			if name, ok := names[i].(string); ok {
				entry.UserName = name
			}
		}
		out = append(out, entry)
	}
	// Redis orders equal scores by member string descending; match the SQLite order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].UserID < out[j].UserID
	})
	return models.RankEntries(out), nil
}
