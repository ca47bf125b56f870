package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. Read views are derived from a
// fresh store snapshot on every call, evaluated against the service clock.
type TaskService struct {
	store  ports.TaskStore
	logger *slog.Logger
	opts   options
}

// NewTaskService creates a TaskService over store. A nil logger discards output.
func NewTaskService(store ports.TaskStore, logger *slog.Logger, opts ...Option) *TaskService {
	return &TaskService{
		store:  store,
		logger: orDiscard(logger),
		opts:   newOptions(opts),
	}
}

// ListTasks returns all tasks ordered by deadline, then priority.
func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.snapshot(ctx, "ListTasks")
	if err != nil {
		return nil, err
	}
	return task.Sort(tasks), nil
}

// Warnings returns tasks due in the next two days.
func (s *TaskService) Warnings(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.snapshot(ctx, "Warnings")
	if err != nil {
		return nil, err
	}
	return task.Warnings(tasks, s.opts.now()), nil
}

// Recommendations returns a one-week extension for each urgent task due
// within a week.
func (s *TaskService) Recommendations(ctx context.Context) ([]task.Recommendation, error) {
	tasks, err := s.snapshot(ctx, "Recommendations")
	if err != nil {
		return nil, err
	}
	return task.Recommendations(tasks, s.opts.now()), nil
}

// CreateTask validates the draft and stores it. Nothing is stored when
// validation fails.
func (s *TaskService) CreateTask(ctx context.Context, draft task.Draft) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", draft.Title))

	t, err := draft.Build(s.opts.now())
	if err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing task: %w", err)
	}

	s.opts.metrics.RecordTaskCreated(ctx)
	s.logger.InfoContext(ctx, "task created", slog.Int64("id", created.ID))
	return created, nil
}

// Seed stores fixture tasks without the past-deadline rule. It stops at the
// first invalid draft; tasks stored before it are kept.
func (s *TaskService) Seed(ctx context.Context, drafts []task.Draft) error {
	for i := range drafts {
		t, err := drafts[i].BuildSeed()
		if err != nil {
			return fmt.Errorf("seed task %d: %w", i, err)
		}
		if _, err := s.store.Create(ctx, t); err != nil {
			return fmt.Errorf("storing seed task %d: %w", i, err)
		}
	}
	if len(drafts) > 0 {
		s.logger.InfoContext(ctx, "seeded tasks", slog.Int("count", len(drafts)))
	}
	return nil
}

func (s *TaskService) snapshot(ctx context.Context, op string) ([]task.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}
