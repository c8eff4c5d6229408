package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtpgate/config"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	operatorID := uuid.New()

	token, err := svc.GenerateToken(operatorID, []string{"admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, operatorID, claims.OperatorID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	token, err := svc.GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	other := &jwtService{accessSecret: "other-secret", accessTTL: svc.accessTTL}
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
