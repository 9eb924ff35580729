package service

import (
	"context"
	"time"

	"fontquiz/internal/catalog"
	"fontquiz/internal/model"
	"fontquiz/internal/quiz"
	"fontquiz/internal/repository"

	"go.uber.org/zap"
)

// ReportService builds the summary of a completed session for report
// generators and archives it when a ReportRepo is configured.
type ReportService struct {
	quizSvc    *QuizService
	catalog    *catalog.Catalog
	reportRepo repository.ReportRepo
	logger     *zap.Logger
}

// NewReportService creates a new report service. reportRepo may be nil.
func NewReportService(quizSvc *QuizService, cat *catalog.Catalog, reportRepo repository.ReportRepo, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		quizSvc:    quizSvc,
		catalog:    cat,
		reportRepo: reportRepo,
		logger:     logger.Named("report"),
	}
}

// Report builds the report for a completed session
func (s *ReportService) Report(ctx context.Context, sessionID string) (*model.Report, error) {
	state, err := s.quizSvc.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Status != model.SessionCompleted || state.Results == nil {
		return nil, quiz.ErrNotCompleted
	}

	report := s.Build(state.ID, state.Email, state.Results)
	if s.reportRepo != nil {
		if err := s.reportRepo.Save(ctx, report); err != nil {
			s.logger.Warn("failed to archive report", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}
	return report, nil
}

// Build assembles a report from results without touching storage
func (s *ReportService) Build(sessionID, email string, results *model.Results) *model.Report {
	rec := results.Recommendation
	style := s.catalog.StyleInfo(rec.Style)
	if rec.StyleLabel != "" {
		style.Label = rec.StyleLabel
	}

	readings := make([]model.TraitReading, 0, len(model.AllTraits))
	for _, t := range model.AllTraits {
		info := s.catalog.TraitInfo(t)
		readings = append(readings, model.TraitReading{
			Trait:    t,
			Score:    results.Display.Get(t),
			LowPole:  info.LowPole,
			HighPole: info.HighPole,
		})
	}

	return &model.Report{
		SessionID:   sessionID,
		Email:       email,
		Style:       style,
		Fonts:       rec.Fonts(),
		Traits:      readings,
		Coarse:      results.Coarse,
		GeneratedAt: time.Now(),
	}
}

// Archived returns a previously stored report, or nil when none exists
func (s *ReportService) Archived(ctx context.Context, sessionID string) (*model.Report, error) {
	if s.reportRepo == nil {
		return nil, nil
	}
	return s.reportRepo.Get(ctx, sessionID)
}
