package task

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of deadlines.
const DateLayout = time.DateOnly

var errUnparsableDeadline = errors.New("unparsable deadline")

// ParseDeadline accepts a YYYY-MM-DD date (read as UTC midnight) or an
// RFC 3339 timestamp and returns the instant in UTC. The result is not
// truncated; use DateOf for the stored form.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errUnparsableDeadline
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errUnparsableDeadline
}

// DateOf truncates t to midnight of its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
