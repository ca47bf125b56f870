// Package task holds the Task entity, its input validation, and the pure
// derivations (sorted view, near-deadline warnings, deadline extension
// recommendations) computed over a snapshot of tasks.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// Priority bounds. Lower numbers are more urgent.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Validation messages reported per field by Draft.Build.
const (
	MsgInvalidTitle    = "invalid or missing task title"
	MsgInvalidDeadline = "must be a date in YYYY-MM-DD or RFC 3339 format"
	MsgPastDeadline    = "must not be in the past"
)

// Task is a schedulable work item. Deadline is always a UTC midnight instant.
type Task struct {
	ID       int64
	Title    string
	Priority int
	Deadline time.Time
}

// DeadlineDate returns the deadline as YYYY-MM-DD.
func (t *Task) DeadlineDate() string {
	return FormatDate(t.Deadline)
}

// Draft is unvalidated input for a new task. ID assignment is left to the store.
type Draft struct {
	Title    string
	Priority int
	Deadline string
}

// Build validates the draft against now and returns the normalised task with a
// zero ID. The title is trimmed and the deadline truncated to its UTC date.
// A deadline instant before now is rejected.
//
// Every failing field is reported in the returned *domain.ValidationError.
func (d *Draft) Build(now time.Time) (Task, error) {
	return d.build(&now)
}

// BuildSeed is Build without the past-deadline rule, for loading fixture data.
func (d *Draft) BuildSeed() (Task, error) {
	return d.build(nil)
}

func (d *Draft) build(now *time.Time) (Task, error) {
	fields := make(map[string]string)

	title := strings.TrimSpace(d.Title)
	if title == "" {
		fields["title"] = MsgInvalidTitle
	}

	deadline, err := ParseDeadline(d.Deadline)
	switch {
	case err != nil:
		fields["deadline"] = MsgInvalidDeadline
	case now != nil && deadline.Before(*now):
		fields["deadline"] = MsgPastDeadline
	}

	if d.Priority < MinPriority || d.Priority > MaxPriority {
		fields["priority"] = PriorityMessage()
	}

	if len(fields) > 0 {
		return Task{}, &domain.ValidationError{Fields: fields}
	}

	return Task{
		Title:    title,
		Priority: d.Priority,
		Deadline: DateOf(deadline),
	}, nil
}

// PriorityMessage is the validation message for an out-of-range or
// non-integer priority.
func PriorityMessage() string {
	return fmt.Sprintf("must be an integer between %d and %d", MinPriority, MaxPriority)
}
