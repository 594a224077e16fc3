// Package session runs the interactive task session: the dispatch loop
// and the add, print, edit, and delete operations.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/avazquez/taskline/internal/prompt"
	"github.com/avazquez/taskline/internal/render"
	"github.com/avazquez/taskline/internal/store"
	"github.com/avazquez/taskline/internal/task"
)

const help = `Commands:
  add     create a task (priority, date, time, text)
  print   show the task table
  edit    change one field of a task
  delete  remove a task
  help    show this message
  quit    end the session and save`

// Session owns the collection for the duration of one interactive run.
type Session struct {
	store  *store.Store
	prompt *prompt.Prompter
	render *render.Renderer
	out    io.Writer
	log    *log.Logger

	// Now supplies the current time for tag classification. Tests
	// override it; everything else uses the wall clock.
	Now func() time.Time
}

// New wires a session around its collaborators.
func New(st *store.Store, p *prompt.Prompter, r *render.Renderer, out io.Writer, logger *log.Logger) *Session {
	return &Session{
		store:  st,
		prompt: p,
		render: r,
		out:    out,
		log:    logger,
		Now:    time.Now,
	}
}

// Run reads verbs until quit or end of input. Input closing mid-prompt
// ends the session the same way quit does.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, `Type "help" for commands.`)
	for {
		verb, err := s.prompt.Line("> ")
		if err != nil {
			return s.finish(err)
		}

		switch strings.ToLower(verb) {
		case "add":
			err = s.Add()
		case "print":
			s.Print()
		case "edit":
			err = s.Edit()
		case "delete":
			err = s.Delete()
		case "help":
			fmt.Fprintln(s.out, help)
		case "quit", "exit":
			return nil
		case "":
		default:
			fmt.Fprintf(s.out, "Unknown command %q, try \"help\".\n", verb)
		}

		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, prompt.ErrClosed) {
		return nil
	}
	return err
}

// Add runs the creation flow: priority, date, time anchored to that
// date, then the multi-line name. A blank name abandons the creation
// and leaves the collection untouched.
func (s *Session) Add() error {
	priority, err := s.prompt.Priority()
	if err != nil {
		return err
	}
	date, err := s.prompt.Date()
	if err != nil {
		return err
	}
	deadline, err := s.prompt.Clock(date)
	if err != nil {
		return err
	}
	name, err := s.prompt.Name()
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(s.out, "Task text is blank, nothing added.")
		return nil
	}

	s.store.Add(task.New(name, priority, deadline))
	s.log.Debug("task added", "priority", priority.Label(), "deadline", deadline.Format(task.DeadlineLayout))
	return nil
}

// Print renders the current table.
func (s *Session) Print() {
	fmt.Fprint(s.out, s.render.Render(s.store.Tasks(), s.Now()))
}

// Edit shows the table, then edits one field of the chosen task. On an
// empty collection it prints the notice and prompts for nothing.
func (s *Session) Edit() error {
	s.Print()
	if s.store.Len() == 0 {
		return nil
	}
	i, err := s.prompt.Index(s.store.Len())
	if err != nil {
		return err
	}
	if err := s.editField(s.store.At(i)); err != nil {
		return err
	}
	s.log.Debug("task edited", "index", i+1)
	return nil
}

// Delete shows the table, then removes the chosen task. On an empty
// collection it prints the notice and prompts for nothing.
func (s *Session) Delete() error {
	s.Print()
	if s.store.Len() == 0 {
		return nil
	}
	i, err := s.prompt.Index(s.store.Len())
	if err != nil {
		return err
	}
	s.store.RemoveAt(i)
	s.log.Debug("task deleted", "index", i+1)
	return nil
}
