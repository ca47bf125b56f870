package task_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ids(tasks []task.Task) []int64 {
	out := make([]int64, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// randomTasks builds n tasks with deadlines scattered around testNow.
func randomTasks(r *rand.Rand, n int) []task.Task {
	tasks := make([]task.Task, n)
	for i := range tasks {
		tasks[i] = task.Task{
			ID:       int64(i + 1),
			Title:    "t",
			Priority: r.IntN(task.MaxPriority) + task.MinPriority,
			Deadline: task.DateOf(testNow).AddDate(0, 0, r.IntN(21)-7),
		}
	}
	return tasks
}

func TestSort(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		{ID: 1, Title: "Task 1", Priority: 1, Deadline: date(2024, 12, 10)},
		{ID: 2, Title: "Task 2", Priority: 2, Deadline: date(2024, 12, 8)},
		{ID: 3, Title: "Task 3", Priority: 1, Deadline: date(2024, 12, 8)},
		{ID: 4, Title: "Task 4", Priority: 1, Deadline: date(2024, 12, 8)},
	}

	got := task.Sort(tasks)

	want := []int64{3, 4, 2, 1}
	if !equalIDs(ids(got), want) {
		t.Errorf("Sort() ids = %v, want %v", ids(got), want)
	}
	if !equalIDs(ids(tasks), []int64{1, 2, 3, 4}) {
		t.Errorf("Sort() modified its input, ids now %v", ids(tasks))
	}
}

func TestSort_Empty(t *testing.T) {
	t.Parallel()

	got := task.Sort(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Sort(nil) = %v, want empty non-nil slice", got)
	}
}

func TestSort_OrderedByDeadlineThenPriority(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 11))
	for range 50 {
		got := task.Sort(randomTasks(r, 25))
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if prev.Deadline.After(cur.Deadline) {
				t.Fatalf("deadline out of order at %d: %v after %v", i, prev.Deadline, cur.Deadline)
			}
			if prev.Deadline.Equal(cur.Deadline) && prev.Priority > cur.Priority {
				t.Fatalf("priority out of order at %d: %d before %d", i, prev.Priority, cur.Priority)
			}
		}
	}
}

func TestWarnings(t *testing.T) {
	t.Parallel()

	now := date(2026, 3, 10)
	tasks := []task.Task{
		{ID: 1, Priority: 1, Deadline: now},                      // due exactly now
		{ID: 2, Priority: 1, Deadline: now.AddDate(0, 0, -1)},    // overdue
		{ID: 3, Priority: 5, Deadline: now.AddDate(0, 0, 1)},     // tomorrow
		{ID: 4, Priority: 2, Deadline: now.AddDate(0, 0, 2)},     // exactly now+2d
		{ID: 5, Priority: 2, Deadline: now.AddDate(0, 0, 3)},     // too far
		{ID: 6, Priority: 2, Deadline: now.Add(time.Nanosecond)}, // just after now
	}

	got := task.Warnings(tasks, now)

	want := []int64{3, 4, 6}
	if !equalIDs(ids(got), want) {
		t.Errorf("Warnings() ids = %v, want %v", ids(got), want)
	}
}

func TestWarnings_MidDay(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		{ID: 1, Priority: 1, Deadline: date(2026, 3, 10)},
		{ID: 2, Priority: 1, Deadline: date(2026, 3, 11)},
		{ID: 3, Priority: 1, Deadline: date(2026, 3, 12)},
		{ID: 4, Priority: 1, Deadline: date(2026, 3, 13)},
	}

	// testNow is 09:30 on the 10th: midnight of the 12th is inside the window,
	// midnight of the 13th is not.
	got := task.Warnings(tasks, testNow)

	want := []int64{2, 3}
	if !equalIDs(ids(got), want) {
		t.Errorf("Warnings() ids = %v, want %v", ids(got), want)
	}
}

func TestWarnings_Bounds(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 5))
	for range 50 {
		for _, w := range task.Warnings(randomTasks(r, 25), testNow) {
			left := w.Deadline.Sub(testNow)
			if left <= 0 || left > task.WarningWindow {
				t.Fatalf("warning for task %d due in %v, want (0, %v]", w.ID, left, task.WarningWindow)
			}
		}
	}
}

func TestWarnings_Empty(t *testing.T) {
	t.Parallel()

	got := task.Warnings(nil, testNow)
	if got == nil || len(got) != 0 {
		t.Errorf("Warnings(nil) = %v, want empty non-nil slice", got)
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	now := date(2026, 3, 10)
	tasks := []task.Task{
		{ID: 1, Title: "due now", Priority: 3, Deadline: now},
		{ID: 2, Title: "overdue", Priority: 1, Deadline: now.AddDate(0, 0, -4)},
		{ID: 3, Title: "low priority", Priority: 4, Deadline: now.AddDate(0, 0, 1)},
		{ID: 4, Title: "edge of window", Priority: 2, Deadline: now.AddDate(0, 0, 7)},
		{ID: 5, Title: "too far", Priority: 1, Deadline: now.AddDate(0, 0, 8)},
	}

	got := task.Recommendations(tasks, now)

	if len(got) != 3 {
		t.Fatalf("Recommendations() len = %d, want 3: %+v", len(got), got)
	}

	wantIDs := []int64{1, 2, 4}
	for i, rec := range got {
		if rec.ID != wantIDs[i] {
			t.Errorf("Recommendations()[%d].ID = %d, want %d", i, rec.ID, wantIDs[i])
		}
	}

	edge := got[2]
	if edge.Title != "edge of window" {
		t.Errorf("Title = %q, want %q", edge.Title, "edge of window")
	}
	if task.FormatDate(edge.CurrentDeadline) != "2026-03-17" {
		t.Errorf("CurrentDeadline = %s, want 2026-03-17", task.FormatDate(edge.CurrentDeadline))
	}
	if task.FormatDate(edge.SuggestedDeadline) != "2026-03-24" {
		t.Errorf("SuggestedDeadline = %s, want 2026-03-24", task.FormatDate(edge.SuggestedDeadline))
	}
}

func TestRecommendations_Bounds(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(13, 17))
	for range 50 {
		tasks := randomTasks(r, 25)
		byID := make(map[int64]task.Task, len(tasks))
		for _, tk := range tasks {
			byID[tk.ID] = tk
		}

		for _, rec := range task.Recommendations(tasks, testNow) {
			src := byID[rec.ID]
			if src.Priority > task.MaxRecommendedPriority {
				t.Fatalf("recommendation for task %d with priority %d", rec.ID, src.Priority)
			}
			if src.Deadline.Sub(testNow) > task.RecommendationWindow {
				t.Fatalf("recommendation for task %d due in %v", rec.ID, src.Deadline.Sub(testNow))
			}
			if !rec.SuggestedDeadline.Equal(rec.CurrentDeadline.Add(task.Extension)) {
				t.Fatalf("suggested %v, want current %v + %v", rec.SuggestedDeadline, rec.CurrentDeadline, task.Extension)
			}
		}
	}
}

func TestRecommendations_Empty(t *testing.T) {
	t.Parallel()

	got := task.Recommendations(nil, testNow)
	if got == nil || len(got) != 0 {
		t.Errorf("Recommendations(nil) = %v, want empty non-nil slice", got)
	}
}
