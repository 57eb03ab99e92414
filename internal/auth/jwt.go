package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// PushAudience is the audience of tokens accepted for push delivery
	PushAudience = "agent-push"
	// AdminAudience is the audience of tokens accepted by the control endpoints
	AdminAudience = "agent-admin"
)

var ErrEmptySecret = errors.New("token secret is empty")

// Claims are carried by agent tokens
type Claims struct {
	Topic string `json:"topic,omitempty"`
	jwt.RegisteredClaims
}

// Generate signs a push delivery token valid for ttl
func Generate(secret, subject, topic string, ttl time.Duration) (string, time.Time, error) {
	return GenerateFor(secret, PushAudience, subject, topic, ttl)
}

// Verify parses a push delivery token signed with secret
func Verify(secret, tokenString string) (*Claims, error) {
	return VerifyFor(secret, PushAudience, tokenString)
}

// GenerateFor signs a token for audience valid for ttl
func GenerateFor(secret, audience, subject, topic string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrEmptySecret
	}
	now := time.Now()
	exp := now.Add(ttl)
	claims := Claims{
		Topic: topic,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, exp, err
}

// VerifyFor parses a token signed with secret and issued for audience
func VerifyFor(secret, audience, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid %s token: %w", audience, err)
	}
	return claims, nil
}
