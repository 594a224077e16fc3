// Package prompt implements the validated line-input loops shared by
// task creation and editing. Every loop re-prompts until it has a valid
// value; the only error any of them returns is ErrClosed, raised when
// the input stream ends mid-prompt.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/avazquez/taskline/internal/task"
)

// ErrClosed reports that the input stream ended before a valid value
// was read.
var ErrClosed = errors.New("input closed")

// Prompter reads validated values from a line-oriented stream, writing
// prompts and validation messages to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New wraps the given streams. Stdin/stdout in the real session,
// buffers in tests.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints the prompt and reads one trimmed line.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", ErrClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Priority prompts until one of the four priority codes is entered,
// case-insensitively. Unrecognized tokens are ignored without a
// message; the prompt itself names the accepted codes.
func (p *Prompter) Priority() (task.Priority, error) {
	for {
		token, err := p.Line("Priority (C/H/N/L): ")
		if err != nil {
			return "", err
		}
		if pr, ok := task.ParsePriority(token); ok {
			return pr, nil
		}
	}
}

// Date prompts until a structurally and calendrically valid
// YYYY-MM-DD date is entered. The result is midnight UTC of that date.
func (p *Prompter) Date() (time.Time, error) {
	for {
		token, err := p.Line("Date (YYYY-MM-DD): ")
		if err != nil {
			return time.Time{}, err
		}
		d, perr := time.ParseInLocation(task.DateLayout, token, time.UTC)
		if perr != nil {
			fmt.Fprintln(p.out, "Invalid date.")
			continue
		}
		return d, nil
	}
}

// Clock prompts until a valid HH:MM time of day is entered and returns
// it combined with the given date.
func (p *Prompter) Clock(date time.Time) (time.Time, error) {
	for {
		token, err := p.Line("Time (HH:MM): ")
		if err != nil {
			return time.Time{}, err
		}
		c, perr := time.ParseInLocation(task.ClockLayout, token, time.UTC)
		if perr != nil {
			fmt.Fprintln(p.out, "Invalid time.")
			continue
		}
		return time.Date(date.Year(), date.Month(), date.Day(),
			c.Hour(), c.Minute(), 0, 0, time.UTC), nil
	}
}

// Name accumulates trimmed lines until a blank one, joins them with
// line breaks, and trims trailing whitespace from the result. An empty
// result is returned as-is; whether blank is acceptable is the
// caller's decision (creation rejects it, editing does not).
func (p *Prompter) Name() (string, error) {
	fmt.Fprintln(p.out, "Task text (finish with an empty line):")
	var lines []string
	for {
		if !p.in.Scan() {
			return "", ErrClosed
		}
		line := strings.TrimSpace(p.in.Text())
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n"), nil
}

// Index prompts until a number in 1..size is entered and returns the
// zero-based index.
func (p *Prompter) Index(size int) (int, error) {
	for {
		token, err := p.Line("Task number: ")
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(token)
		if perr != nil || n < 1 || n > size {
			fmt.Fprintln(p.out, "Invalid task number.")
			continue
		}
		return n - 1, nil
	}
}
