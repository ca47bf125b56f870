package task

import (
	"cmp"
	"slices"
	"time"
)

const (
	// WarningWindow is how far ahead of now a deadline raises a warning.
	WarningWindow = 2 * 24 * time.Hour
	// RecommendationWindow is how close a deadline must be to be extended.
	RecommendationWindow = 7 * 24 * time.Hour
	// Extension is added to the current deadline in a recommendation.
	Extension = 7 * 24 * time.Hour
	// MaxRecommendedPriority is the least urgent priority still eligible.
	MaxRecommendedPriority = 3
)

// Recommendation suggests moving a task's deadline back by Extension.
type Recommendation struct {
	ID                int64
	Title             string
	CurrentDeadline   time.Time
	SuggestedDeadline time.Time
}

// Sort returns a copy of tasks ordered by deadline, then priority, ascending.
// Equal keys keep their input order. The input slice is not modified.
func Sort(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	slices.SortStableFunc(out, func(a, b Task) int {
		if c := a.Deadline.Compare(b.Deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.Priority, b.Priority)
	})
	return out
}

// Warnings returns the tasks due strictly after now and no later than
// now+WarningWindow, in input order.
func Warnings(tasks []Task, now time.Time) []Task {
	out := make([]Task, 0)
	for i := range tasks {
		left := tasks[i].Deadline.Sub(now)
		if left > 0 && left <= WarningWindow {
			out = append(out, tasks[i])
		}
	}
	return out
}

// Recommendations returns an extension suggestion for every task due within
// RecommendationWindow of now whose priority is at most
// MaxRecommendedPriority. There is no lower bound: overdue tasks qualify.
func Recommendations(tasks []Task, now time.Time) []Recommendation {
	out := make([]Recommendation, 0)
	for i := range tasks {
		t := &tasks[i]
		if t.Deadline.Sub(now) > RecommendationWindow || t.Priority > MaxRecommendedPriority {
			continue
		}
		out = append(out, Recommendation{
			ID:                t.ID,
			Title:             t.Title,
			CurrentDeadline:   t.Deadline,
			SuggestedDeadline: t.Deadline.Add(Extension),
		})
	}
	return out
}
