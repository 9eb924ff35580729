package service

import (
	"context"

	"fontquiz/internal/cache"
	"fontquiz/internal/model"

	"go.uber.org/zap"
)

// StatsService keeps aggregate counters for operators. Recording failures
// are logged and never reach quiz callers.
type StatsService struct {
	tally     cache.StyleTally
	answers   cache.AnswerStats
	labels    map[model.Style]string
	questions []model.Question
	logger    *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(tally cache.StyleTally, answers cache.AnswerStats, labels map[model.Style]string, questions []model.Question, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{
		tally:     tally,
		answers:   answers,
		labels:    labels,
		questions: questions,
		logger:    logger.Named("stats"),
	}
}

// RecordAnswer counts one choice for a question
func (s *StatsService) RecordAnswer(ctx context.Context, questionID int, choice model.Choice) {
	if err := s.answers.Record(ctx, questionID, choice); err != nil {
		s.logger.Warn("failed to record answer", zap.Int("questionId", questionID), zap.Error(err))
	}
}

// RecordCompletion counts one completed quiz for a style
func (s *StatsService) RecordCompletion(ctx context.Context, style model.Style) {
	if err := s.tally.Increment(ctx, style); err != nil {
		s.logger.Warn("failed to record completion", zap.String("style", string(style)), zap.Error(err))
	}
}

// TopStyles returns the most recommended styles with display labels
func (s *StatsService) TopStyles(ctx context.Context, limit int) ([]model.StyleCount, error) {
	if limit <= 0 {
		limit = len(model.AllStyles)
	}
	entries, err := s.tally.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Label = s.labels[entries[i].Style]
	}
	return entries, nil
}

// Questions returns choice counts for every question in quiz order
func (s *StatsService) Questions(ctx context.Context) ([]model.QuestionStats, error) {
	ids := make([]int, len(s.questions))
	for i, q := range s.questions {
		ids[i] = q.ID
	}
	return s.answers.Get(ctx, ids)
}
