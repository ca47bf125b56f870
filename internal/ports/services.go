package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/testimonial"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/user"
)

// TaskService defines the service port for the task derivation engine.
// Implemented by the application layer; called by inbound adapters (handlers).
// All read views are computed against the service clock at call time.
type TaskService interface {
	// ListTasks returns every task ordered by deadline, then priority.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// Warnings returns tasks due within the next two days, excluding
	// deadlines that have already passed.
	Warnings(ctx context.Context) ([]task.Task, error)

	// Recommendations returns a deadline extension for every high-priority
	// task due within a week.
	Recommendations(ctx context.Context) ([]task.Recommendation, error)

	// CreateTask validates the draft and stores it with the next sequential ID.
	// Returns domain.ErrValidation if the draft fails validation.
	CreateTask(ctx context.Context, draft task.Draft) (*task.Task, error)
}

// TestimonialService defines the service port for the testimonial
// moderation queue.
type TestimonialService interface {
	// Submit stores a new, unapproved testimonial.
	// Returns domain.ErrValidation if the testimonial fails validation.
	Submit(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error)

	// Approve marks a testimonial as approved. Approving twice is a no-op.
	// Returns domain.ErrNotFound if the testimonial does not exist.
	Approve(ctx context.Context, id int64) (*testimonial.Testimonial, error)

	// List returns approved testimonials, or all of them when includePending
	// is true, ordered by ID.
	List(ctx context.Context, includePending bool) ([]testimonial.Testimonial, error)
}

// AuthService defines the service port for signup, login, and token checks.
type AuthService interface {
	// Signup registers a new user.
	// Returns domain.ErrValidation for missing fields and domain.ErrConflict
	// if the username is taken.
	Signup(ctx context.Context, creds user.Credentials) error

	// Login checks the credentials and issues a bearer token.
	// Returns domain.ErrUnauthorized if the credentials do not match.
	Login(ctx context.Context, creds user.Credentials) (*Token, error)

	// Authenticate verifies a bearer token and returns its claims.
	// Returns domain.ErrUnauthorized for any invalid or expired token.
	Authenticate(ctx context.Context, token string) (*Claims, error)
}
