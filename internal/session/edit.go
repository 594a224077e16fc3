package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/avazquez/taskline/internal/task"
)

// editField loops until a recognized field selector is entered, then
// runs the matching acquisition loop and mutates the task in place.
// Editing the "task" field accepts a blank result, unlike creation;
// the asymmetry is deliberate and kept as observed.
func (s *Session) editField(tk *task.Task) error {
	for {
		field, err := s.prompt.Line("Field to edit (priority/date/time/task): ")
		if err != nil {
			return err
		}

		switch strings.ToLower(field) {
		case "priority":
			priority, err := s.prompt.Priority()
			if err != nil {
				return err
			}
			tk.Priority = priority
		case "date":
			existing, err := tk.DeadlineTime()
			if err != nil {
				return err
			}
			date, err := s.prompt.Date()
			if err != nil {
				return err
			}
			// New date, same time of day.
			tk.SetDeadline(time.Date(date.Year(), date.Month(), date.Day(),
				existing.Hour(), existing.Minute(), 0, 0, time.UTC))
		case "time":
			existing, err := tk.DeadlineTime()
			if err != nil {
				return err
			}
			// New time of day, anchored to the existing date.
			deadline, err := s.prompt.Clock(existing)
			if err != nil {
				return err
			}
			tk.SetDeadline(deadline)
		case "task":
			name, err := s.prompt.Name()
			if err != nil {
				return err
			}
			tk.Name = name
		default:
			fmt.Fprintln(s.out, "Invalid field.")
			continue
		}
		return nil
	}
}
