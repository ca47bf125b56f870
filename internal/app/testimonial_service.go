package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/testimonial"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// Compile-time check that TestimonialService implements ports.TestimonialService.
var _ ports.TestimonialService = (*TestimonialService)(nil)

// TestimonialService implements ports.TestimonialService.
type TestimonialService struct {
	store  ports.TestimonialStore
	logger *slog.Logger
	opts   options
}

// NewTestimonialService creates a TestimonialService over store.
func NewTestimonialService(store ports.TestimonialStore, logger *slog.Logger, opts ...Option) *TestimonialService {
	return &TestimonialService{
		store:  store,
		logger: orDiscard(logger),
		opts:   newOptions(opts),
	}
}

// Submit validates t and stores it unapproved, stamped with the current time.
// Client-supplied ID, Approved, and CreatedAt values are ignored.
func (s *TestimonialService) Submit(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	s.logger.InfoContext(ctx, "submitting testimonial", slog.String("name", t.Name))

	if err := t.Validate(); err != nil {
		return nil, err
	}

	rec := testimonial.Testimonial{
		Name:      strings.TrimSpace(t.Name),
		Message:   strings.TrimSpace(t.Message),
		CreatedAt: s.opts.now().UTC(),
	}

	created, err := s.store.Create(ctx, rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store testimonial",
			slog.String("operation", "Submit"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing testimonial: %w", err)
	}

	s.opts.metrics.RecordTestimonialSubmitted(ctx)
	return created, nil
}

// Approve marks testimonial id as approved.
func (s *TestimonialService) Approve(ctx context.Context, id int64) (*testimonial.Testimonial, error) {
	s.logger.InfoContext(ctx, "approving testimonial", slog.Int64("id", id))

	t, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "testimonial lookup failed",
			slog.String("operation", "Approve"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	if t.Approved {
		return t, nil
	}

	t.Approved = true
	updated, err := s.store.Update(ctx, *t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to approve testimonial",
			slog.String("operation", "Approve"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating testimonial: %w", err)
	}
	return updated, nil
}

// List returns approved testimonials, plus pending ones when includePending.
func (s *TestimonialService) List(ctx context.Context, includePending bool) ([]testimonial.Testimonial, error) {
	out, err := s.store.List(ctx, !includePending)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list testimonials",
			slog.String("operation", "List"),
			slog.Bool("include_pending", includePending),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing testimonials: %w", err)
	}
	return out, nil
}
