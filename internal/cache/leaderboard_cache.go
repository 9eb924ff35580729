package cache

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"fontquiz/internal/model"

	"github.com/redis/go-redis/v9"
)

const styleTallyKey = "quiz:styles"

// StyleTally counts completed quizzes per recommended style
type StyleTally interface {
	Increment(ctx context.Context, style model.Style) error
	Top(ctx context.Context, limit int) ([]model.StyleCount, error)
}

type redisStyleTally struct {
	client *redis.Client
}

// NewRedisStyleTally creates a tally backed by a Redis sorted set
func NewRedisStyleTally(client *redis.Client) StyleTally {
	return &redisStyleTally{
		client: client,
	}
}

func (c *redisStyleTally) Increment(ctx context.Context, style model.Style) error {
	return c.client.ZIncrBy(ctx, styleTallyKey, 1, string(style)).Err()
}

func (c *redisStyleTally) Top(ctx context.Context, limit int) ([]model.StyleCount, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, styleTallyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.StyleCount, len(results))
	for i, z := range results {
		member, _ := z.Member.(string)
		entries[i] = model.StyleCount{
			Style: model.Style(member),
			Count: int64(z.Score),
			Rank:  i + 1,
		}
	}
	return entries, nil
}

type memoryStyleTally struct {
	mu     sync.Mutex
	counts map[model.Style]int64
}

// NewMemoryStyleTally creates a process-local tally
func NewMemoryStyleTally() StyleTally {
	return &memoryStyleTally{counts: make(map[model.Style]int64)}
}

func (c *memoryStyleTally) Increment(ctx context.Context, style model.Style) error {
	c.mu.Lock()
	c.counts[style]++
	c.mu.Unlock()
	return nil
}

// Top orders by count descending, then by style name like a Redis ZREVRANGE
func (c *memoryStyleTally) Top(ctx context.Context, limit int) ([]model.StyleCount, error) {
	c.mu.Lock()
	entries := make([]model.StyleCount, 0, len(c.counts))
	for s, n := range c.counts {
		entries = append(entries, model.StyleCount{Style: s, Count: n})
	}
	c.mu.Unlock()

	slices.SortFunc(entries, func(a, b model.StyleCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(b.Style, a.Style)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
