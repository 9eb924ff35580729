package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fontquiz/internal/cache"
	"fontquiz/internal/catalog"
	"fontquiz/internal/config"
	"fontquiz/internal/model"
	"fontquiz/internal/scoring"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func verifyNoLeaks(t *testing.T) {
	goleak.VerifyNone(t,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		OperatorUsername: "admin",
		OperatorPassword: "hunter2",
		SessionTTL:       time.Hour,
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

type recordingSink struct {
	name string
	err  error
	mu   sync.Mutex

	leads    []*model.Lead
	contacts []*model.ContactMessage
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) SendLead(ctx context.Context, lead *model.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, lead)
	return s.err
}

func (s *recordingSink) SendContact(ctx context.Context, msg *model.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, msg)
	return s.err
}

func (s *recordingSink) events() []model.LeadEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.LeadEvent, len(s.leads))
	for i, l := range s.leads {
		out[i] = l.Event
	}
	return out
}

type panickingSink struct{}

func (panickingSink) Name() string { return "panic" }
func (panickingSink) SendLead(ctx context.Context, lead *model.Lead) error {
	panic("sink exploded")
}
func (panickingSink) SendContact(ctx context.Context, msg *model.ContactMessage) error {
	return errors.New("unreachable")
}

type broadcastEvent struct {
	sessionID string
	msgType   string
	payload   interface{}
}

type recordingBroadcaster struct {
	mu           sync.Mutex
	events       []broadcastEvent
	disconnected []string
}

func (b *recordingBroadcaster) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{sessionID, msgType, payload})
}

func (b *recordingBroadcaster) DisconnectSession(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disconnected = append(b.disconnected, sessionID)
}

func (b *recordingBroadcaster) count(msgType string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.events {
		if e.msgType == msgType {
			n++
		}
	}
	return n
}

type quizFixture struct {
	svc         *QuizService
	store       cache.SessionStore
	sink        *recordingSink
	leads       *LeadService
	stats       *StatsService
	broadcaster *recordingBroadcaster
	auth        *AuthService
	cat         *catalog.Catalog
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()
	cat := testCatalog(t)
	engine := scoring.NewEngine(cat, zap.NewNop())
	store := cache.NewMemorySessionStore(time.Hour)
	sink := &recordingSink{name: "recording"}
	leads := NewLeadService(zap.NewNop(), time.Second, sink)
	stats := NewStatsService(cache.NewMemoryStyleTally(), cache.NewMemoryAnswerStats(), cat.Labels(), cat.Questions(), zap.NewNop())
	auth := NewAuthService(testConfig())
	b := &recordingBroadcaster{}

	svc := NewQuizService(store, engine, auth, leads, stats, zap.NewNop())
	svc.SetBroadcaster(b)
	t.Cleanup(leads.Wait)

	return &quizFixture{
		svc:         svc,
		store:       store,
		sink:        sink,
		leads:       leads,
		stats:       stats,
		broadcaster: b,
		auth:        auth,
		cat:         cat,
	}
}

func (f *quizFixture) startedSession(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	created, err := f.svc.Create(ctx)
	require.NoError(t, err)
	_, err = f.svc.Start(ctx, created.SessionID, "ada@example.com")
	require.NoError(t, err)
	return created.SessionID
}

func (f *quizFixture) answer(t *testing.T, id, letters string) *model.SessionView {
	t.Helper()
	var view *model.SessionView
	for i, r := range letters {
		var err error
		view, err = f.svc.Answer(context.Background(), id, &model.AnswerRequest{QuestionID: i + 1, Choice: string(r)})
		require.NoError(t, err, "question %d", i+1)
	}
	return view
}
