package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/user"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// Result labels for auth.attempts.total.
const (
	resultSuccess  = "success"
	resultInvalid  = "invalid"
	resultConflict = "conflict"
	resultDenied   = "denied"
	resultError    = "error"
)

// AuthService implements ports.AuthService on top of a user store, a
// password hasher, and a token issuer.
type AuthService struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger *slog.Logger
	opts   options
}

// NewAuthService creates an AuthService.
func NewAuthService(
	users ports.UserStore,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	logger *slog.Logger,
	opts ...Option,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: orDiscard(logger),
		opts:   newOptions(opts),
	}
}

// Signup hashes the password and registers the user.
func (s *AuthService) Signup(ctx context.Context, creds user.Credentials) error {
	s.logger.InfoContext(ctx, "signing up user", slog.String("username", creds.Username))

	if err := creds.Validate(); err != nil {
		s.opts.metrics.RecordAuthAttempt(ctx, "signup", resultInvalid)
		return err
	}

	hash, err := s.hasher.Hash(creds.Password)
	if errors.Is(err, domain.ErrValidation) {
		s.opts.metrics.RecordAuthAttempt(ctx, "signup", resultInvalid)
		return err
	}
	if err != nil {
		s.opts.metrics.RecordAuthAttempt(ctx, "signup", resultError)
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "Signup"),
			slog.Any("error", err),
		)
		return fmt.Errorf("hashing password: %w", err)
	}

	err = s.users.Create(ctx, user.User{Username: creds.Username, PasswordHash: hash})
	switch {
	case errors.Is(err, domain.ErrConflict):
		s.opts.metrics.RecordAuthAttempt(ctx, "signup", resultConflict)
		return fmt.Errorf("user already exists: %w", domain.ErrConflict)
	case err != nil:
		s.opts.metrics.RecordAuthAttempt(ctx, "signup", resultError)
		s.logger.ErrorContext(ctx, "failed to store user",
			slog.String("operation", "Signup"),
			slog.Any("error", err),
		)
		return fmt.Errorf("storing user: %w", err)
	}

	s.opts.metrics.RecordAuthAttempt(ctx, "signup", resultSuccess)
	return nil
}

// Login checks the credentials and returns a bearer token. Unknown users
// and wrong passwords yield the same error.
func (s *AuthService) Login(ctx context.Context, creds user.Credentials) (*ports.Token, error) {
	s.logger.InfoContext(ctx, "logging in user", slog.String("username", creds.Username))

	if err := creds.Validate(); err != nil {
		s.opts.metrics.RecordAuthAttempt(ctx, "login", resultInvalid)
		return nil, err
	}

	u, err := s.users.Get(ctx, creds.Username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.opts.metrics.RecordAuthAttempt(ctx, "login", resultDenied)
		return nil, errInvalidCredentials()
	case err != nil:
		s.opts.metrics.RecordAuthAttempt(ctx, "login", resultError)
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, creds.Password); err != nil {
		s.opts.metrics.RecordAuthAttempt(ctx, "login", resultDenied)
		s.logger.DebugContext(ctx, "password check failed",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, errInvalidCredentials()
	}

	tok, err := s.tokens.Issue(u.Username)
	if err != nil {
		s.opts.metrics.RecordAuthAttempt(ctx, "login", resultError)
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.opts.metrics.RecordAuthAttempt(ctx, "login", resultSuccess)
	return tok, nil
}

// Authenticate verifies a bearer token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*ports.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized)
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.DebugContext(ctx, "token rejected", slog.Any("error", err))
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	return claims, nil
}

func errInvalidCredentials() error {
	return fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
}
