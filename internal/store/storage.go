package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avazquez/taskline/internal/task"
)

// Load reads the task file at path. A missing file is not an error; it
// yields an empty store, the state of a first session.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	var tasks []*task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}

	return &Store{tasks: tasks}, nil
}

// Save overwrites the task file at path with the store's full contents,
// creating the parent directory if needed. No atomicity beyond the
// single overwrite.
func Save(path string, s *Store) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create task file directory: %w", err)
		}
	}

	tasks := s.tasks
	if tasks == nil {
		tasks = []*task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	return nil
}
