package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/store/memory"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
)

func newTaskStore(t *testing.T) *memory.TaskStore {
	t.Helper()
	s, err := memory.NewTaskStore()
	if err != nil {
		t.Fatalf("NewTaskStore() error = %v", err)
	}
	return s
}

func sampleTask(title string) task.Task {
	return task.Task{
		Title:    title,
		Priority: 2,
		Deadline: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTaskStore_CreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	s := newTaskStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		in := sampleTask("t")
		in.ID = 99 // ignored
		got, err := s.Create(ctx, in)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.ID != want {
			t.Errorf("Create() ID = %d, want %d", got.ID, want)
		}
	}
}

func TestTaskStore_ListReturnsIDOrder(t *testing.T) {
	t.Parallel()
	s := newTaskStore(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		if _, err := s.Create(ctx, sampleTask(title)); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List() len = %d, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Title != want || got[i].ID != int64(i+1) {
			t.Errorf("List()[%d] = {ID:%d Title:%q}, want {ID:%d Title:%q}", i, got[i].ID, got[i].Title, i+1, want)
		}
	}
}

func TestTaskStore_ListEmpty(t *testing.T) {
	t.Parallel()
	s := newTaskStore(t)

	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", got)
	}
}

func TestTaskStore_ReturnedValuesAreCopies(t *testing.T) {
	t.Parallel()
	s := newTaskStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleTask("original"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	created.Title = "mutated"

	listed, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	listed[0].Title = "mutated again"

	again, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if again[0].Title != "original" {
		t.Errorf("stored Title = %q, want %q", again[0].Title, "original")
	}
}

func TestTaskStore_ConcurrentCreateKeepsIDsUnique(t *testing.T) {
	t.Parallel()
	s := newTaskStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Create(ctx, sampleTask("c")); err != nil {
				t.Errorf("Create() error = %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != n {
		t.Fatalf("List() len = %d, want %d", len(got), n)
	}
	for i := range got {
		if got[i].ID != int64(i+1) {
			t.Fatalf("List()[%d].ID = %d, want %d", i, got[i].ID, i+1)
		}
	}
}

func TestTaskStore_CanceledContext(t *testing.T) {
	t.Parallel()
	s := newTaskStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Create(ctx, sampleTask("x")); err == nil {
		t.Error("Create() with canceled context = nil error, want error")
	}
	if _, err := s.List(ctx); err == nil {
		t.Error("List() with canceled context = nil error, want error")
	}
	if err := s.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() with canceled context = nil, want error")
	}
}

func TestTaskStore_HealthCheck(t *testing.T) {
	t.Parallel()
	s := newTaskStore(t)

	if s.Name() != "task-store" {
		t.Errorf("Name() = %q, want %q", s.Name(), "task-store")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
