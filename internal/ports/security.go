package ports

import "time"

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	// Hash returns an encoded hash of password.
	Hash(password string) (string, error)

	// Compare returns nil if password matches hash, or an error otherwise.
	Compare(hash, password string) error
}

// Token is an issued bearer token.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Claims is what a verified token asserts.
type Claims struct {
	Subject   string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	// Issue returns a signed token for subject.
	Issue(subject string) (*Token, error)

	// Verify parses and validates a token, returning its claims.
	Verify(token string) (*Claims, error)
}
