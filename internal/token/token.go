// Package token issues and verifies signed access tokens.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/framehq/frame-api/internal/errs"
)

// Service signs and verifies HS256 JWTs with a fixed TTL. Tokens are
// stateless: validity is decided by signature and expiry alone.
type Service struct {
	key []byte
	ttl time.Duration
}

// NewService constructs a token service for the given signing key and TTL.
func NewService(key []byte, ttl time.Duration) (*Service, error) {
	if len(key) == 0 {
		return nil, errors.New("token: empty signing key")
	}
	if ttl <= 0 {
		return nil, errors.New("token: non-positive ttl")
	}
	return &Service{key: key, ttl: ttl}, nil
}

// Issue creates a signed HS256 JWT whose subject is the decimal user id.
func (s *Service) Issue(userID int64) (string, time.Time, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	exp := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        jti.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	return signed, exp, err
}

// Verify parses tokenStr and returns the subject user id. Any failure
// (wrong signature or key, wrong algorithm, malformed structure, expired
// token, bad subject) yields an error matching errs.ErrUnauthorized.
// Expiry is exact against the server clock, no leeway.
func (s *Service) Verify(tokenStr string) (int64, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("%w: invalid token", errs.ErrUnauthorized)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", errs.ErrUnauthorized)
	}
	return id, nil
}

// TTL reports the configured token lifetime.
func (s *Service) TTL() time.Duration { return s.ttl }
