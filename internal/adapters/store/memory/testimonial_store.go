package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/testimonial"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

const (
	tableTestimonials = "testimonials"
	indexApproved     = "approved"
)

// Compile-time interface checks.
var (
	_ ports.TestimonialStore = (*TestimonialStore)(nil)
	_ ports.HealthChecker    = (*TestimonialStore)(nil)
)

// TestimonialStore is an in-memory [ports.TestimonialStore]. Testimonials
// are never deleted, so IDs stay sequential.
type TestimonialStore struct {
	db *memdb.MemDB

	// lastID is read and advanced only while a write txn is open.
	lastID int64
}

// NewTestimonialStore creates an empty testimonial store.
func NewTestimonialStore() (*TestimonialStore, error) {
	db, err := newDB(tableTestimonials, map[string]*memdb.IndexSchema{
		indexID: {
			Name:    indexID,
			Unique:  true,
			Indexer: &memdb.IntFieldIndex{Field: "ID"},
		},
		indexApproved: {
			Name:    indexApproved,
			Indexer: &memdb.BoolFieldIndex{Field: "Approved"},
		},
	})
	if err != nil {
		return nil, err
	}
	return &TestimonialStore{db: db}, nil
}

// Create stores a copy of t under the next sequential ID.
func (s *TestimonialStore) Create(ctx context.Context, t testimonial.Testimonial) (*testimonial.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	rec := t
	rec.ID = s.lastID + 1
	if err := txn.Insert(tableTestimonials, &rec); err != nil {
		return nil, fmt.Errorf("inserting testimonial: %w", err)
	}
	s.lastID = rec.ID
	txn.Commit()

	out := rec
	return &out, nil
}

// Get returns a copy of the testimonial with the given ID.
func (s *TestimonialStore) Get(ctx context.Context, id int64) (*testimonial.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableTestimonials, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("looking up testimonial: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("testimonial %d: %w", id, domain.ErrNotFound)
	}

	out := *obj.(*testimonial.Testimonial)
	return &out, nil
}

// Update replaces an existing testimonial.
func (s *TestimonialStore) Update(ctx context.Context, t testimonial.Testimonial) (*testimonial.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableTestimonials, indexID, t.ID)
	if err != nil {
		return nil, fmt.Errorf("looking up testimonial: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("testimonial %d: %w", t.ID, domain.ErrNotFound)
	}

	rec := t
	if err := txn.Insert(tableTestimonials, &rec); err != nil {
		return nil, fmt.Errorf("updating testimonial: %w", err)
	}
	txn.Commit()

	out := rec
	return &out, nil
}

// List returns testimonials in ID order, optionally only approved ones.
func (s *TestimonialStore) List(ctx context.Context, approvedOnly bool) ([]testimonial.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	var (
		it  memdb.ResultIterator
		err error
	)
	if approvedOnly {
		it, err = txn.Get(tableTestimonials, indexApproved, true)
	} else {
		it, err = txn.Get(tableTestimonials, indexID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing testimonials: %w", err)
	}

	out := collect(it, func(obj any) testimonial.Testimonial { return *obj.(*testimonial.Testimonial) })
	slices.SortFunc(out, func(a, b testimonial.Testimonial) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Name identifies the store in readiness checks.
func (s *TestimonialStore) Name() string { return "testimonial-store" }

// HealthCheck reports whether the store can serve reads.
func (s *TestimonialStore) HealthCheck(ctx context.Context) error {
	return healthCheck(ctx, s.db, tableTestimonials)
}
