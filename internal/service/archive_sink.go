package service

import (
	"context"

	"fontquiz/internal/model"
	"fontquiz/internal/repository"
)

// archiveSink stores leads and contact messages in MongoDB
type archiveSink struct {
	repo repository.LeadRepo
}

// NewArchiveSink wraps a LeadRepo as a LeadSink
func NewArchiveSink(repo repository.LeadRepo) LeadSink {
	return &archiveSink{repo: repo}
}

func (s *archiveSink) Name() string { return "archive" }

func (s *archiveSink) SendLead(ctx context.Context, lead *model.Lead) error {
	return s.repo.SaveLead(ctx, lead)
}

func (s *archiveSink) SendContact(ctx context.Context, msg *model.ContactMessage) error {
	return s.repo.SaveContact(ctx, msg)
}
