// Package service contains application services for authentication and the movie catalog.
package service

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/framehq/frame-api/internal/crypto"
	"github.com/framehq/frame-api/internal/errs"
	"github.com/framehq/frame-api/internal/limiter"
	"github.com/framehq/frame-api/internal/model"
	"github.com/framehq/frame-api/internal/repository"
	"github.com/framehq/frame-api/internal/token"
)

var emailRe = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// AuthService defines registration and login operations.
type AuthService interface {
	// Register creates a new user and returns an access token for it.
	Register(ctx context.Context, email, username, password string) (model.Tokens, error)
	// LoginWithIP applies rate limiting and authenticates the user.
	LoginWithIP(ctx context.Context, email, password, ip string) (model.Tokens, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *token.Service
	lim    limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens *token.Service, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, lim: lim}
}

// Register validates the input, stores the user with a hashed password and
// issues an access token. A taken email surfaces as errs.ErrAlreadyExists.
func (s *AuthServiceImpl) Register(ctx context.Context, email, username, password string) (model.Tokens, error) {
	if !emailRe.MatchString(email) {
		return model.Tokens{}, errs.Validation("email", "invalid email address")
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return model.Tokens{}, errs.Validation("username", "must be 3-50 characters")
	}
	if utf8.RuneCountInString(password) < 6 {
		return model.Tokens{}, errs.Validation("password", "must be at least 6 characters")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return model.Tokens{}, err
	}
	u := &model.User{Email: email, Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return model.Tokens{}, err
	}
	return s.issue(u.ID)
}

// LoginWithIP authenticates with rate limiting by (email, ip). Wrong email and
// wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, email, password, ip string) (model.Tokens, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return model.Tokens{}, err
	}
	if !allowed {
		return model.Tokens{}, errs.ErrRateLimited
	}

	u, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil || !crypto.VerifyPassword(password, u.PasswordHash) {
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			// storage failure, not a bad credential
			return model.Tokens{}, err
		}
		if blocked, _, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			return model.Tokens{}, errs.ErrRateLimited
		}
		return model.Tokens{}, errs.ErrUnauthorized
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, email, ipHash)

	return s.issue(u.ID)
}

func (s *AuthServiceImpl) issue(userID int64) (model.Tokens, error) {
	access, exp, err := s.tokens.Issue(userID)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, nil
}
