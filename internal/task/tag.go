package task

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Tag classifies how urgent a task is relative to the current date.
// It is derived from the deadline on every display, never stored.
type Tag string

const (
	TagInTime  Tag = "in_time"
	TagToday   Tag = "today"
	TagOverdue Tag = "overdue"
)

type tagMeta struct {
	label string
	color lipgloss.Color
}

var tagTable = map[Tag]tagMeta{
	TagInTime:  {label: "In time", color: lipgloss.Color("82")},
	TagToday:   {label: "Today", color: lipgloss.Color("220")},
	TagOverdue: {label: "Overdue", color: lipgloss.Color("196")},
}

// Label returns the human-readable name of the tag.
func (g Tag) Label() string {
	return tagTable[g].label
}

// Color returns the terminal color associated with the tag.
func (g Tag) Color() lipgloss.Color {
	return tagTable[g].color
}

// Classify maps a task's deadline date against now's date. Deadlines on
// a later date are in time, on the same date due today, on an earlier
// date overdue. Total over any task with a valid deadline.
func Classify(t *Task, now time.Time) Tag {
	switch d := t.DaysUntil(now); {
	case d > 0:
		return TagInTime
	case d < 0:
		return TagOverdue
	default:
		return TagToday
	}
}
