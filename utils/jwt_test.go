package utils

import (
	"testing"
	"time"

	"disruptive/models"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newManager(t *testing.T) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)
}

func TestGenerateVerifyRoundtrip(t *testing.T) {
	tm := newManager(t)

	signed, err := tm.Generate("user-1", models.RoleAdmin)
	require.NoError(t, err)

	ident, err := tm.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", ident.Subject)
	assert.Equal(t, models.RoleAdmin, ident.Role)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tm := newManager(t)

	claims := jwt.MapClaims{
		"sub":  "user-1",
		"role": "user",
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tm := newManager(t)

	other, err := NewTokenManager("another-secret", time.Hour)
	require.NoError(t, err)
	signed, err := other.Generate("user-1", models.RoleUser)
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	tm := newManager(t)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, raw)
	}
}

func TestVerifyRejectsUnknownRoleClaim(t *testing.T) {
	tm := newManager(t)

	claims := jwt.MapClaims{
		"sub":  "user-1",
		"role": "superuser",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	tm := newManager(t)

	claims := jwt.MapClaims{
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
