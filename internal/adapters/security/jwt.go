package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// ErrInvalidToken is returned by Verify for any token that fails parsing,
// signature, method, expiry, or issuer checks.
var ErrInvalidToken = errors.New("invalid token")

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// JWTIssuer issues and verifies HS256-signed JWTs.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// JWTOption configures a JWTIssuer.
type JWTOption func(*JWTIssuer)

// WithClock overrides the issuer's time source.
func WithClock(now func() time.Time) JWTOption {
	return func(j *JWTIssuer) { j.now = now }
}

// NewJWTIssuer returns an issuer signing with secret. Tokens carry issuer as
// "iss" and expire ttl after issuance.
func NewJWTIssuer(secret, issuer string, ttl time.Duration, opts ...JWTOption) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}
	j := &JWTIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Issue signs a token for subject.
func (j *JWTIssuer) Issue(subject string) (*ports.Token, error) {
	// JWT NumericDate has second precision.
	now := j.now().UTC().Truncate(time.Second)
	exp := now.Add(j.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    j.issuer,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &ports.Token{Value: signed, ExpiresAt: exp}, nil
}

// Verify parses token and checks its signature, algorithm, expiry, and issuer.
func (j *JWTIssuer) Verify(token string) (*ports.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	out := &ports.Claims{Subject: claims.Subject, ID: claims.ID}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
