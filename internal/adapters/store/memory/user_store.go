package memory

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/user"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

const tableUsers = "users"

// Compile-time interface checks.
var (
	_ ports.UserStore     = (*UserStore)(nil)
	_ ports.HealthChecker = (*UserStore)(nil)
)

// UserStore is an in-memory [ports.UserStore] keyed by exact username.
type UserStore struct {
	db *memdb.MemDB
}

// NewUserStore creates an empty user store.
func NewUserStore() (*UserStore, error) {
	db, err := newDB(tableUsers, map[string]*memdb.IndexSchema{
		indexID: {
			Name:    indexID,
			Unique:  true,
			Indexer: &memdb.StringFieldIndex{Field: "Username"},
		},
	})
	if err != nil {
		return nil, err
	}
	return &UserStore{db: db}, nil
}

// Create stores u unless the username is already taken.
func (s *UserStore) Create(ctx context.Context, u user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableUsers, indexID, u.Username)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("user %q: %w", u.Username, domain.ErrConflict)
	}

	rec := u
	if err := txn.Insert(tableUsers, &rec); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	txn.Commit()
	return nil
}

// Get returns a copy of the user with the given username.
func (s *UserStore) Get(ctx context.Context, username string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableUsers, indexID, username)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}

	out := *obj.(*user.User)
	return &out, nil
}

// Name identifies the store in readiness checks.
func (s *UserStore) Name() string { return "user-store" }

// HealthCheck reports whether the store can serve reads.
func (s *UserStore) HealthCheck(ctx context.Context) error {
	return healthCheck(ctx, s.db, tableUsers)
}
