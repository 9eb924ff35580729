package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"fontquiz/internal/model"
	"fontquiz/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidContact  = errors.New("invalid contact message")
	ErrArchiveDisabled = errors.New("lead archive not configured")
)

const maxContactMessage = 5000

// LeadService forwards leads to every configured sink. Quiz operations hand
// leads over with Submit and never wait for delivery.
type LeadService struct {
	sinks   []LeadSink
	archive repository.LeadRepo
	timeout time.Duration
	logger  *zap.Logger
	wg      sync.WaitGroup
}

// NewLeadService creates a lead service. timeout bounds each detached submission.
func NewLeadService(logger *zap.Logger, timeout time.Duration, sinks ...LeadSink) *LeadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadService{
		sinks:   sinks,
		timeout: timeout,
		logger:  logger.Named("leads"),
	}
}

// SetArchive sets the repository used to list captured leads
func (s *LeadService) SetArchive(repo repository.LeadRepo) {
	s.archive = repo
}

// Recent lists the newest archived leads, optionally filtered by event
func (s *LeadService) Recent(ctx context.Context, event model.LeadEvent, limit int64) ([]*model.Lead, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.archive.ListLeads(ctx, event, limit)
}

// Sinks returns the names of the configured sinks
func (s *LeadService) Sinks() []string {
	names := make([]string, len(s.sinks))
	for i, sink := range s.sinks {
		names[i] = sink.Name()
	}
	return names
}

// Capture sends a lead to all sinks concurrently and returns the first failure
func (s *LeadService) Capture(ctx context.Context, lead *model.Lead) error {
	return s.fanOut(func(sink LeadSink) error {
		return sink.SendLead(ctx, lead)
	}, zap.String("sessionId", lead.SessionID), zap.String("event", string(lead.Event)))
}

// Submit captures a lead in the background. Failures are logged only.
func (s *LeadService) Submit(lead *model.Lead) {
	if len(s.sinks) == 0 {
		return
	}
	if lead.CapturedAt.IsZero() {
		lead.CapturedAt = time.Now()
	}

	s.wg.Add(1)
	go func(l *model.Lead) {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("recovered from panic in lead capture", zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.Capture(ctx, l); err != nil {
			s.logger.Warn("lead capture failed", zap.String("sessionId", l.SessionID), zap.Error(err))
		}
	}(lead)
}

// Wait blocks until every submitted lead has been processed
func (s *LeadService) Wait() {
	s.wg.Wait()
}

// Contact validates and delivers a contact-form message synchronously
func (s *LeadService) Contact(ctx context.Context, msg *model.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Message == "" {
		return fmt.Errorf("%w: name and message are required", ErrInvalidContact)
	}
	if len(msg.Message) > maxContactMessage {
		return fmt.Errorf("%w: message longer than %d characters", ErrInvalidContact, maxContactMessage)
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(msg.Email))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}
	msg.Email = addr.Address
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now()
	}

	if len(s.sinks) == 0 {
		s.logger.Info("contact message received with no sinks configured", zap.String("id", msg.ID))
		return nil
	}
	return s.fanOut(func(sink LeadSink) error {
		return sink.SendContact(ctx, msg)
	}, zap.String("contactId", msg.ID))
}

func (s *LeadService) fanOut(send func(LeadSink) error, fields ...zap.Field) error {
	log := s.logger.With(fields...)
	var g errgroup.Group
	for _, sink := range s.sinks {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s: panic: %v", sink.Name(), r)
					log.Error("recovered from panic in lead sink", zap.String("sink", sink.Name()), zap.Any("panic", r))
				}
			}()
			if err := send(sink); err != nil {
				log.Warn("lead sink failed", zap.String("sink", sink.Name()), zap.Error(err))
				return fmt.Errorf("%s: %w", sink.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
