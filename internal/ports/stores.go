package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/testimonial"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/user"
)

// TaskStore owns the task collection. Tasks are append-only.
type TaskStore interface {
	// Create assigns the next sequential ID (starting at 1) to t, stores it,
	// and returns the stored copy. The ID on the argument is ignored.
	Create(ctx context.Context, t task.Task) (*task.Task, error)

	// List returns a snapshot of all tasks in ID order.
	List(ctx context.Context) ([]task.Task, error)
}

// UserStore owns registered users, keyed by username.
type UserStore interface {
	// Create stores a new user.
	// Returns domain.ErrConflict if the username already exists.
	Create(ctx context.Context, u user.User) error

	// Get returns the user with the given username.
	// Returns domain.ErrNotFound if no such user exists.
	Get(ctx context.Context, username string) (*user.User, error)
}

// TestimonialStore owns submitted testimonials.
type TestimonialStore interface {
	// Create assigns the next sequential ID and stores t.
	Create(ctx context.Context, t testimonial.Testimonial) (*testimonial.Testimonial, error)

	// Get returns a testimonial by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id int64) (*testimonial.Testimonial, error)

	// Update replaces the stored testimonial with the same ID.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, t testimonial.Testimonial) (*testimonial.Testimonial, error)

	// List returns testimonials in ID order; approvedOnly filters out the
	// pending queue.
	List(ctx context.Context, approvedOnly bool) ([]testimonial.Testimonial, error)
}
