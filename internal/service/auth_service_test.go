package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	svc := NewAuthService(testConfig())

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Contains(t, resp.OperatorID, "op_")

	claims, err := svc.ValidateOperatorToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.OperatorID, claims.OperatorID)
	assert.Nil(t, claims.ExpiresAt)
}

func TestSessionToken(t *testing.T) {
	svc := NewAuthService(testConfig())

	token, err := svc.GenerateSessionToken("s-1")
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.SessionID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	svc := NewAuthService(testConfig())

	sessionToken, err := svc.GenerateSessionToken("s-1")
	require.NoError(t, err)
	_, err = svc.ValidateOperatorToken(sessionToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	login, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)
	_, err = svc.ValidateSessionToken(login.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenRejected(t *testing.T) {
	cfg := testConfig()
	cfg.SessionTTL = -time.Minute
	expired, err := NewAuthService(cfg).GenerateSessionToken("s-1")
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecret = "another-secret"
	foreign, err := NewAuthService(other).GenerateSessionToken("s-1")
	require.NoError(t, err)

	svc := NewAuthService(testConfig())
	for name, token := range map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"garbage":      "not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateSessionToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
