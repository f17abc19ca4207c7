package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"condoreserve-backend/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("unit-test-secret-0123456789abcdef")

	token, err := tm.GenerateAccessToken(7, domain.RoleResident, time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, domain.RoleResident, claims.Role)

	actor := claims.Actor()
	assert.Equal(t, int32(7), actor.UserID)
	assert.False(t, actor.IsAdmin())
}

func TestTokenManager_AdminClaims(t *testing.T) {
	tm := NewTokenManager("unit-test-secret-0123456789abcdef")

	token, err := tm.GenerateAccessToken(99, domain.RoleAdmin, time.Minute)
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.True(t, claims.Actor().IsAdmin())
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("unit-test-secret-0123456789abcdef")

	token, err := tm.GenerateAccessToken(7, domain.RoleResident, -time.Minute)
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("unit-test-secret-0123456789abcdef")
	other := NewTokenManager("another-secret-fedcba9876543210aaaa")

	token, err := tm.GenerateAccessToken(7, domain.RoleResident, time.Minute)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("unit-test-secret-0123456789abcdef")
	_, err := tm.ValidateToken("definitely.not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
