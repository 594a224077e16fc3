package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avazquez/taskline/internal/task"
)

func newTask(name string) *task.Task {
	return task.New(name, task.PriorityNormal, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
}

func TestAddAndAt(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Len())

	s.Add(newTask("first"))
	s.Add(newTask("second"))

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "first", s.At(0).Name)
	assert.Equal(t, "second", s.At(1).Name)
	assert.Nil(t, s.At(-1))
	assert.Nil(t, s.At(2))
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	s := New()
	for _, name := range []string{"a", "b", "c", "d"} {
		s.Add(newTask(name))
	}

	require.True(t, s.RemoveAt(1))
	require.Equal(t, 3, s.Len())

	var names []string
	for _, tk := range s.Tasks() {
		names = append(names, tk.Name)
	}
	assert.Equal(t, []string{"a", "c", "d"}, names)

	assert.False(t, s.RemoveAt(3))
	assert.False(t, s.RemoveAt(-1))
	assert.Equal(t, 3, s.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	s := New()
	s.Add(task.New("buy milk", task.PriorityCritical, time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)))
	s.Add(task.New("line one\nline two", task.PriorityLow, time.Date(2026, 6, 2, 18, 0, 0, 0, time.UTC)))

	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	first := loaded.At(0)
	assert.Equal(t, "buy milk", first.Name)
	assert.Equal(t, task.PriorityCritical, first.Priority)
	assert.Equal(t, "2026-05-01 09:30", first.Deadline)

	second := loaded.At(1)
	assert.Equal(t, "line one\nline two", second.Name)
	assert.Equal(t, task.PriorityLow, second.Priority)
}

func TestSavedFileShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	s := New()
	s.Add(task.New("buy milk", task.PriorityHigh, time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)))
	require.NoError(t, Save(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Key names and the letter token are the on-disk contract.
	assert.Contains(t, string(data), `"name": "buy milk"`)
	assert.Contains(t, string(data), `"priority": "H"`)
	assert.Contains(t, string(data), `"deadlineDateTime": "2026-05-01 09:30"`)
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveEmptyStoreWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, Save(path, New()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
