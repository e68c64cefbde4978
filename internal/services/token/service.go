package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweepstats/sweepstats/internal/dependencies/clock"
	"github.com/sweepstats/sweepstats/internal/model"
)

// Errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Claims binds a user id to the registered JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID model.UserID `json:"uid"`
}

// Config holds configuration for the token service
type Config struct {
	// Secret is the HMAC signing key. Required, no default.
	Secret []byte
	// TTL is the validity window of issued tokens
	TTL time.Duration
}

// DefaultTTL is the validity window used when Config.TTL is zero
const DefaultTTL = time.Hour

// Service issues and validates signed bearer tokens. Issuance and
// validation are pure computation and safe under arbitrary concurrency.
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// New creates a new token service. It fails if no secret is supplied;
// there is deliberately no built-in default.
func New(cfg Config, clk clock.Clock) (*Service, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token signing secret is required")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: cfg.Secret,
		ttl:    ttl,
		clock:  clk,
	}, nil
}

// Issue creates a signed token binding userID with a fresh expiry
func (s *Service) Issue(userID model.UserID) (string, error) {
	now := s.clock.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate checks signature and expiry and returns the bound user id.
// A tampered or malformed token fails with ErrInvalidToken, a token past
// its expiry with ErrExpiredToken.
func (s *Service) Validate(tokenString string) (model.UserID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// Refresh validates the presented token and issues a new one for the
// same user with a fresh expiry. An expired token cannot be refreshed.
func (s *Service) Refresh(tokenString string) (string, error) {
	userID, err := s.Validate(tokenString)
	if err != nil {
		return "", err
	}
	return s.Issue(userID)
}

// TTL returns the configured validity window
func (s *Service) TTL() time.Duration {
	return s.ttl
}
