// Package testimonial holds the Testimonial entity moderated before it is
// shown publicly.
package testimonial

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// Testimonial is a piece of user feedback. New testimonials start unapproved.
type Testimonial struct {
	ID        int64
	Name      string
	Message   string
	Approved  bool
	CreatedAt time.Time
}

// Validate checks business rules for the Testimonial entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Testimonial) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Message) == "" {
		fields["message"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
