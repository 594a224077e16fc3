// Package store holds the ordered in-memory task collection and its
// JSON file representation.
package store

import (
	"github.com/avazquez/taskline/internal/task"
)

// Store owns the session's tasks. Order is insertion order and is what
// the 1-based display indices refer to.
type Store struct {
	tasks []*task.Task
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a task to the collection.
func (s *Store) Add(t *task.Task) {
	s.tasks = append(s.tasks, t)
}

// At returns the task at the zero-based index, or nil when the index is
// out of range.
func (s *Store) At(i int) *task.Task {
	if i < 0 || i >= len(s.tasks) {
		return nil
	}
	return s.tasks[i]
}

// RemoveAt deletes the task at the zero-based index, preserving the
// relative order of the rest. Returns false when the index is out of
// range.
func (s *Store) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.tasks) {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// Tasks returns the backing slice in display order.
func (s *Store) Tasks() []*task.Task {
	return s.tasks
}
