package utils

import (
	"errors"
	"fmt"
	"time"

	"disruptive/models"

	"github.com/golang-jwt/jwt"
)

// ErrInvalidToken covers every verification failure: missing token, bad
// signature, expiry in the past, or claims outside the closed role set.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenManager issues and verifies the signed bearer tokens. The signing
// secret is fixed at construction and never mutated, so a single manager is
// safe to share across requests.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager around the process-wide signing secret.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token manager: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// Generate creates a signed JWT carrying the subject and role claims.
func (m *TokenManager) Generate(subject string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the identity it
// carries. Any failure yields ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*models.Identity, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	rawRole, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := models.ParseRole(rawRole)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &models.Identity{Subject: sub, Role: role}, nil
}
