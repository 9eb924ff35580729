package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fontquiz/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestNewInMemory(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		OperatorUsername: "admin",
		OperatorPassword: "hunter2",
		SessionTTL:       time.Hour,
		CRM:              &config.CRMConfig{},
	}
	a, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Nil(t, a.LeadRepo)
	assert.Nil(t, a.ReportRepo)
	assert.Empty(t, a.Leads.Sinks())

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sessions", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, a.Close(context.Background()))
}

func TestNewWithCRM(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		SessionTTL: time.Hour,
		CRM:        &config.CRMConfig{Endpoint: "http://crm.invalid/leads", TimeoutMS: 100},
	}
	a, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close(context.Background())

	assert.Equal(t, []string{"crm"}, a.Leads.Sinks())
}

func TestNewFailsOnUnreachableRedis(t *testing.T) {
	cfg := &config.Config{
		RedisURI:   "redis://127.0.0.1:1",
		SessionTTL: time.Hour,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, cfg, zap.NewNop())
	assert.ErrorContains(t, err, "failed to ping redis")
}
