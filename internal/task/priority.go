package task

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Priority is a user-assigned importance level. The value is the
// single-letter token that appears on disk and in priority input.
type Priority string

const (
	PriorityCritical Priority = "C"
	PriorityHigh     Priority = "H"
	PriorityNormal   Priority = "N"
	PriorityLow      Priority = "L"
)

// Priorities lists all levels in descending order of importance.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow}

type priorityMeta struct {
	label string
	color lipgloss.Color
}

var priorityTable = map[Priority]priorityMeta{
	PriorityCritical: {label: "Critical", color: lipgloss.Color("196")},
	PriorityHigh:     {label: "High", color: lipgloss.Color("208")},
	PriorityNormal:   {label: "Normal", color: lipgloss.Color("39")},
	PriorityLow:      {label: "Low", color: lipgloss.Color("245")},
}

// Label returns the human-readable name of the level.
func (p Priority) Label() string {
	return priorityTable[p].label
}

// Color returns the terminal color associated with the level.
func (p Priority) Color() lipgloss.Color {
	return priorityTable[p].color
}

// ParsePriority matches a token against the priority codes,
// case-insensitively. ok is false for anything else.
func ParsePriority(token string) (p Priority, ok bool) {
	p = Priority(strings.ToUpper(strings.TrimSpace(token)))
	_, ok = priorityTable[p]
	return p, ok
}
