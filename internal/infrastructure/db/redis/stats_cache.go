package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

const (
	postStatsKey = "stats:posts"
	statsTTL     = time.Minute
)

// StatsCache caches the dashboard post aggregates in Redis with a short TTL.
// Staleness is bounded by statsTTL; a post created in that window shows up in
// the listing immediately and in the counters within a minute.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

func (c *StatsCache) GetPostStats(ctx context.Context) (ports.PostStats, bool, error) {
	raw, err := c.client.Get(ctx, postStatsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.PostStats{}, false, nil
		}
		return ports.PostStats{}, false, fmt.Errorf("stats get: %w", err)
	}

	var stats ports.PostStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// treat a corrupted entry as a miss; it will be overwritten
		return ports.PostStats{}, false, nil
	}
	return stats, true, nil
}

func (c *StatsCache) SetPostStats(ctx context.Context, stats ports.PostStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats marshal: %w", err)
	}
	if err := c.client.Set(ctx, postStatsKey, raw, statsTTL).Err(); err != nil {
		return fmt.Errorf("stats set: %w", err)
	}
	return nil
}
