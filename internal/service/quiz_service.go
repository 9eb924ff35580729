package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fontquiz/internal/cache"
	"fontquiz/internal/model"
	"fontquiz/internal/quiz"
	"fontquiz/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuizService runs quiz sessions keyed by session ID. Every operation loads
// the stored state, applies one transition, saves it and notifies subscribers.
type QuizService struct {
	store       cache.SessionStore
	engine      *scoring.Engine
	authSvc     *AuthService
	leadSvc     *LeadService
	statsSvc    *StatsService
	broadcaster Broadcaster
	logger      *zap.Logger
	locks       *sessionLocks
}

// NewQuizService creates a new quiz service
func NewQuizService(
	store cache.SessionStore,
	engine *scoring.Engine,
	authSvc *AuthService,
	leadSvc *LeadService,
	statsSvc *StatsService,
	logger *zap.Logger,
) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{
		store:    store,
		engine:   engine,
		authSvc:  authSvc,
		leadSvc:  leadSvc,
		statsSvc: statsSvc,
		logger:   logger.Named("quiz"),
		locks:    newSessionLocks(),
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *QuizService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Questions returns the quiz in order
func (s *QuizService) Questions() []model.Question {
	return s.engine.Questions()
}

// Create opens a new not-started session and issues its token
func (s *QuizService) Create(ctx context.Context) (*model.CreateSessionResponse, error) {
	id := uuid.New().String()
	sess := quiz.New(id, s.engine)

	if err := s.store.Save(ctx, sess.State()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	token, err := s.authSvc.GenerateSessionToken(id)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Debug("session created", zap.String("sessionId", id))
	return &model.CreateSessionResponse{
		SessionID: id,
		Token:     token,
		Session:   sess.View(),
	}, nil
}

// Get returns the current view of a session
func (s *QuizService) Get(ctx context.Context, sessionID string) (*model.SessionView, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// State returns the raw stored state
func (s *QuizService) State(ctx context.Context, sessionID string) (*model.SessionState, error) {
	return s.store.Get(ctx, sessionID)
}

// CurrentQuestion returns the question awaiting an answer
func (s *QuizService) CurrentQuestion(ctx context.Context, sessionID string) (*model.Question, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q, ok := sess.CurrentQuestion()
	if !ok {
		return nil, quiz.ErrNotInProgress
	}
	return &q, nil
}

// Results returns the results of a completed session
func (s *QuizService) Results(ctx context.Context, sessionID string) (*model.Results, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Results()
}

// Start records the email and opens question 1
func (s *QuizService) Start(ctx context.Context, sessionID, email string) (*model.SessionView, error) {
	sess, err := s.mutate(ctx, sessionID, func(sess *quiz.Session) error {
		return sess.Start(email)
	})
	if err != nil {
		return nil, err
	}

	st := sess.State()
	s.leadSvc.Submit(&model.Lead{
		SessionID:  st.ID,
		Email:      st.Email,
		Event:      model.LeadStarted,
		CapturedAt: time.Now(),
	})
	return sess.View(), nil
}

// Answer records the choice for the current question
func (s *QuizService) Answer(ctx context.Context, sessionID string, req *model.AnswerRequest) (*model.SessionView, error) {
	choice, err := model.ParseChoice(req.Choice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrInvalidChoice, err)
	}

	sess, err := s.mutate(ctx, sessionID, func(sess *quiz.Session) error {
		return sess.Answer(req.QuestionID, choice)
	})
	if err != nil {
		return nil, err
	}

	s.statsSvc.RecordAnswer(ctx, req.QuestionID, choice)
	return sess.View(), nil
}

// Back steps to the previous question
func (s *QuizService) Back(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.view(s.mutate(ctx, sessionID, func(sess *quiz.Session) error {
		return sess.Back()
	}))
}

// Reset returns to question 1 keeping the email
func (s *QuizService) Reset(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.view(s.mutate(ctx, sessionID, func(sess *quiz.Session) error {
		sess.Reset()
		return nil
	}))
}

// Restart returns to the intake screen, clearing the email
func (s *QuizService) Restart(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.view(s.mutate(ctx, sessionID, func(sess *quiz.Session) error {
		sess.Restart()
		return nil
	}))
}

// SkipToResults fills the remaining answers with A and completes the quiz
func (s *QuizService) SkipToResults(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.view(s.mutate(ctx, sessionID, func(sess *quiz.Session) error {
		return sess.SkipToResults()
	}))
}

// Delete drops a session and disconnects its subscribers
func (s *QuizService) Delete(ctx context.Context, sessionID string) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	if _, err := s.store.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, EventSessionClosed, nil)
		s.broadcaster.DisconnectSession(sessionID)
	}
	return nil
}

func (s *QuizService) load(ctx context.Context, sessionID string) (*quiz.Session, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return quiz.Resume(state, s.engine), nil
}

func (s *QuizService) view(sess *quiz.Session, err error) (*model.SessionView, error) {
	if err != nil {
		return nil, err
	}
	return sess.View(), nil
}

// mutate serialises one transition per session. A failed transition leaves
// the stored state untouched.
func (s *QuizService) mutate(ctx context.Context, sessionID string, fn func(*quiz.Session) error) (*quiz.Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	wasCompleted := sess.State().Status == model.SessionCompleted

	if err := fn(sess); err != nil {
		return nil, err
	}
	st := sess.State()
	if err := s.store.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, EventSessionUpdated, sess.View())
	}
	if st.Status == model.SessionCompleted && !wasCompleted {
		s.onCompleted(ctx, st)
	}
	return sess, nil
}

func (s *QuizService) onCompleted(ctx context.Context, st *model.SessionState) {
	rec := st.Results.Recommendation
	s.logger.Info("quiz completed",
		zap.String("sessionId", st.ID),
		zap.String("style", string(rec.Style)),
		zap.String("primary", rec.Primary.Name))

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(st.ID, EventResultsReady, st.Results)
	}
	s.statsSvc.RecordCompletion(ctx, rec.Style)
	s.leadSvc.Submit(&model.Lead{
		SessionID:  st.ID,
		Email:      st.Email,
		Event:      model.LeadCompleted,
		Results:    st.Results,
		CapturedAt: time.Now(),
	})
}

// sessionLocks hands out one mutex per session ID and forgets it once unused
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	sl, ok := l.locks[id]
	if !ok {
		sl = &sessionLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
