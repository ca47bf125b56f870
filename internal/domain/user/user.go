// Package user holds account credentials for signup and login.
package user

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// User is a registered account. PasswordHash is never the plain password.
type User struct {
	Username     string
	PasswordHash string
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Credentials is a username/password pair as submitted by a client.
type Credentials struct {
	Username string
	Password string
}

// Validate checks that both fields are present and that the password fits
// in MaxPasswordBytes. The username is compared as given; only
// whitespace-only values are rejected.
func (c *Credentials) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	switch {
	case c.Password == "":
		fields["password"] = domain.MsgRequired
	case len(c.Password) > MaxPasswordBytes:
		fields["password"] = fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
