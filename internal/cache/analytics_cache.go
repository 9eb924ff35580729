package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"fontquiz/internal/model"

	"github.com/redis/go-redis/v9"
)

// AnswerStats counts option choices per question across all sessions
type AnswerStats interface {
	Record(ctx context.Context, questionID int, choice model.Choice) error
	Get(ctx context.Context, questionIDs []int) ([]model.QuestionStats, error)
}

type redisAnswerStats struct {
	client *redis.Client
}

// NewRedisAnswerStats creates stats backed by one Redis hash per question
func NewRedisAnswerStats(client *redis.Client) AnswerStats {
	return &redisAnswerStats{
		client: client,
	}
}

func (c *redisAnswerStats) key(questionID int) string {
	return fmt.Sprintf("quiz:question:%d:choices", questionID)
}

func (c *redisAnswerStats) Record(ctx context.Context, questionID int, choice model.Choice) error {
	return c.client.HIncrBy(ctx, c.key(questionID), string(choice), 1).Err()
}

func (c *redisAnswerStats) Get(ctx context.Context, questionIDs []int) ([]model.QuestionStats, error) {
	pipe := c.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(questionIDs))
	for i, id := range questionIDs {
		cmds[i] = pipe.HGetAll(ctx, c.key(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read answer stats: %w", err)
	}

	stats := make([]model.QuestionStats, len(questionIDs))
	for i, id := range questionIDs {
		fields := cmds[i].Val()
		a, _ := strconv.ParseInt(fields[string(model.ChoiceA)], 10, 64)
		b, _ := strconv.ParseInt(fields[string(model.ChoiceB)], 10, 64)
		stats[i] = model.QuestionStats{QuestionID: id, A: a, B: b}
	}
	return stats, nil
}

type memoryAnswerStats struct {
	mu     sync.Mutex
	counts map[int]*model.QuestionStats
}

// NewMemoryAnswerStats creates process-local stats
func NewMemoryAnswerStats() AnswerStats {
	return &memoryAnswerStats{counts: make(map[int]*model.QuestionStats)}
}

func (c *memoryAnswerStats) Record(ctx context.Context, questionID int, choice model.Choice) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.counts[questionID]
	if !ok {
		s = &model.QuestionStats{QuestionID: questionID}
		c.counts[questionID] = s
	}
	switch choice {
	case model.ChoiceA:
		s.A++
	case model.ChoiceB:
		s.B++
	}
	return nil
}

func (c *memoryAnswerStats) Get(ctx context.Context, questionIDs []int) ([]model.QuestionStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := make([]model.QuestionStats, len(questionIDs))
	for i, id := range questionIDs {
		stats[i] = model.QuestionStats{QuestionID: id}
		if s, ok := c.counts[id]; ok {
			stats[i] = *s
		}
	}
	return stats, nil
}
