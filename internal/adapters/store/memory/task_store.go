package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

const tableTasks = "tasks"

// Compile-time interface checks.
var (
	_ ports.TaskStore     = (*TaskStore)(nil)
	_ ports.HealthChecker = (*TaskStore)(nil)
)

// TaskStore is an append-only, in-memory [ports.TaskStore].
type TaskStore struct {
	db *memdb.MemDB

	// lastID is read and advanced only while a write txn is open.
	lastID int64
}

// NewTaskStore creates an empty task store.
func NewTaskStore() (*TaskStore, error) {
	db, err := newDB(tableTasks, map[string]*memdb.IndexSchema{
		indexID: {
			Name:    indexID,
			Unique:  true,
			Indexer: &memdb.IntFieldIndex{Field: "ID"},
		},
	})
	if err != nil {
		return nil, err
	}
	return &TaskStore{db: db}, nil
}

// Create stores a copy of t under the next sequential ID.
func (s *TaskStore) Create(ctx context.Context, t task.Task) (*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	rec := t
	rec.ID = s.lastID + 1
	if err := txn.Insert(tableTasks, &rec); err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}
	s.lastID = rec.ID
	txn.Commit()

	out := rec
	return &out, nil
}

// List returns all tasks in ID order.
func (s *TaskStore) List(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableTasks, indexID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	tasks := collect(it, func(obj any) task.Task { return *obj.(*task.Task) })
	slices.SortFunc(tasks, func(a, b task.Task) int { return cmp.Compare(a.ID, b.ID) })
	return tasks, nil
}

// Name identifies the store in readiness checks.
func (s *TaskStore) Name() string { return "task-store" }

// HealthCheck reports whether the store can serve reads.
func (s *TaskStore) HealthCheck(ctx context.Context) error {
	return healthCheck(ctx, s.db, tableTasks)
}
