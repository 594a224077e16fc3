// Package render formats the task collection as a framed fixed-width
// table. Rendering is a pure function of the task list and "now".
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/avazquez/taskline/internal/task"
)

// Column widths. The task text cell wraps at textWidth display columns.
const (
	idxWidth   = 2
	dateWidth  = 10
	clockWidth = 5
	textWidth  = 44
)

// totalWidth is the full frame width: six cells, each wrapped in
// "| ... |" with shared separators.
const totalWidth = 2 + idxWidth + 3 + dateWidth + 3 + clockWidth + 3 + 1 + 3 + 1 + 3 + textWidth + 2

const noTasksNotice = "No tasks yet."

// Renderer renders task tables, optionally with color cells.
type Renderer struct {
	colored bool
	header  lipgloss.Style
}

// New returns a renderer. With colored false the priority and tag
// cells degrade to plain spaces and the header is unstyled.
func New(colored bool) *Renderer {
	header := lipgloss.NewStyle()
	if colored {
		header = header.Bold(true)
	}
	return &Renderer{colored: colored, header: header}
}

// Render produces the full table, or a single notice when the
// collection is empty. Identical inputs produce identical output.
func (r *Renderer) Render(tasks []*task.Task, now time.Time) string {
	if len(tasks) == 0 {
		return noTasksNotice + "\n"
	}

	border := strings.Repeat("-", totalWidth)

	var b strings.Builder
	b.WriteString(border + "\n")
	b.WriteString(r.headerRow() + "\n")
	b.WriteString(border + "\n")
	for i, tk := range tasks {
		r.writeTask(&b, i+1, tk, now)
	}
	b.WriteString(border + "\n")
	return b.String()
}

func (r *Renderer) headerRow() string {
	row := fmt.Sprintf("| %s | %s | %s | P | T | %s |",
		pad(" #", idxWidth),
		pad("Date", dateWidth),
		pad("Time", clockWidth),
		pad("Task", textWidth))
	return r.header.Render(row)
}

// writeTask emits one row per wrapped line of the task's name. The
// first row carries the index, deadline columns, and the two color
// cells; continuation rows repeat blank placeholders.
func (r *Renderer) writeTask(b *strings.Builder, index int, tk *task.Task, now time.Time) {
	date, clock := tk.DeadlineParts()
	priCell := r.cell(tk.Priority.Color())
	tagCell := r.cell(task.Classify(tk, now).Color())

	for i, row := range wrapName(tk.Name, textWidth) {
		if i == 0 {
			fmt.Fprintf(b, "| %2d | %s | %s | %s | %s | %s |\n",
				index, pad(date, dateWidth), pad(clock, clockWidth),
				priCell, tagCell, pad(row, textWidth))
			continue
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			pad("", idxWidth), pad("", dateWidth), pad("", clockWidth),
			" ", " ", pad(row, textWidth))
	}
}

// cell paints a single space with the given background color. The cell
// carries meaning purely through color; no label text is shown.
func (r *Renderer) cell(color lipgloss.Color) string {
	if !r.colored {
		return " "
	}
	return lipgloss.NewStyle().Background(color).Render(" ")
}

// wrapName splits the name on its explicit line breaks, then
// hard-wraps each resulting line at width display columns.
func wrapName(name string, width int) []string {
	var rows []string
	for _, line := range strings.Split(name, "\n") {
		rows = append(rows, chunk(line, width)...)
	}
	return rows
}

func chunk(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	var rows []string
	var cur strings.Builder
	w := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			rows = append(rows, cur.String())
			cur.Reset()
			w = 0
		}
		cur.WriteRune(r)
		w += rw
	}
	if cur.Len() > 0 {
		rows = append(rows, cur.String())
	}
	return rows
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
