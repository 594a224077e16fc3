// Package task defines the task record and its derived urgency tag.
package task

import (
	"strings"
	"time"
)

// Layouts for the canonical deadline string and its two halves.
const (
	DeadlineLayout = "2006-01-02 15:04"
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
)

// Task is a single unit of work. Deadline holds the canonical
// "YYYY-MM-DD HH:MM" form and is only ever assigned from values that
// survived input validation, so it always re-parses.
type Task struct {
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
	Deadline string   `json:"deadlineDateTime"`
}

// New builds a task from already-validated parts.
func New(name string, priority Priority, deadline time.Time) *Task {
	return &Task{
		Name:     name,
		Priority: priority,
		Deadline: deadline.Format(DeadlineLayout),
	}
}

// DeadlineTime parses the canonical deadline in UTC.
func (t *Task) DeadlineTime() (time.Time, error) {
	return time.ParseInLocation(DeadlineLayout, t.Deadline, time.UTC)
}

// DeadlineParts splits the canonical deadline into its date and
// time-of-day columns.
func (t *Task) DeadlineParts() (date, clock string) {
	date, clock, _ = strings.Cut(t.Deadline, " ")
	return date, clock
}

// SetDeadline replaces the deadline with a validated timestamp.
func (t *Task) SetDeadline(deadline time.Time) {
	t.Deadline = deadline.Format(DeadlineLayout)
}

// DaysUntil returns the signed count of whole calendar days between now
// and the deadline. Time of day is ignored on both sides; only the UTC
// date components are compared.
func (t *Task) DaysUntil(now time.Time) int {
	deadline, err := t.DeadlineTime()
	if err != nil {
		return 0
	}
	return int(truncateToDay(deadline).Sub(truncateToDay(now.UTC())).Hours() / 24)
}

func truncateToDay(v time.Time) time.Time {
	return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
}
