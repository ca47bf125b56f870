// Package security provides the outbound adapters for password hashing and
// bearer token issuance: a bcrypt [ports.PasswordHasher] and an HS256 JWT
// [ports.TokenIssuer].
package security
