package service

import (
	"context"
	"errors"
	"testing"

	"fontquiz/internal/cache"
	"fontquiz/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingTally struct{}

func (failingTally) Increment(ctx context.Context, style model.Style) error {
	return errors.New("redis down")
}

func (failingTally) Top(ctx context.Context, limit int) ([]model.StyleCount, error) {
	return nil, errors.New("redis down")
}

func TestTopStylesAddsLabels(t *testing.T) {
	cat := testCatalog(t)
	svc := NewStatsService(cache.NewMemoryStyleTally(), cache.NewMemoryAnswerStats(), cat.Labels(), cat.Questions(), nil)
	ctx := context.Background()

	svc.RecordCompletion(ctx, model.StyleSlabSerif)
	svc.RecordCompletion(ctx, model.StyleSlabSerif)
	svc.RecordCompletion(ctx, model.StyleHumanistSans)

	top, err := svc.TopStyles(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []model.StyleCount{
		{Style: model.StyleSlabSerif, Label: "Slab Serif", Count: 2, Rank: 1},
		{Style: model.StyleHumanistSans, Label: "Humanist Sans", Count: 1, Rank: 2},
	}, top)
}

func TestRecordFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cat := testCatalog(t)
	svc := NewStatsService(failingTally{}, cache.NewMemoryAnswerStats(), cat.Labels(), cat.Questions(), zap.New(core))

	svc.RecordCompletion(context.Background(), model.StyleSlabSerif)
	assert.Equal(t, 1, logs.FilterMessage("failed to record completion").Len())

	_, err := svc.TopStyles(context.Background(), 3)
	assert.Error(t, err)
}
