package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
)

const testSecret = "test-secret-key-at-least-32-chars!!"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.GenerateAccessToken(42, "asmith", domain.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.EmployeeID)
	assert.Equal(t, "asmith", claims.Username)
	assert.Equal(t, domain.RoleManager, claims.Role)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute)

	token, err := tm.GenerateAccessToken(42, "asmith", domain.RoleEmployee)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("another-secret-key-also-32-chars!!!", time.Hour)

	token, err := tm.GenerateAccessToken(42, "asmith", domain.RoleEmployee)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
