package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/store"
)

// SetupTestStore creates a file store backed by a task file in a temp directory.
// The file itself is not created.
func SetupTestStore(t *testing.T) *store.FileStore {
	t.Helper()

	repo, err := store.New(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	return repo
}

// CreateTestTask appends a task with the next free id and returns that id
func CreateTestTask(t *testing.T, repo store.DataStore, description string, status models.Status) int {
	t.Helper()

	tasks := ReadTasks(t, repo)
	id, err := models.NextID(tasks)
	if err != nil {
		t.Fatalf("Failed to pick test task id: %v", err)
	}
	task := models.Task{
		ID:          id,
		Description: description,
		Status:      status,
	}
	if err := repo.Save(context.Background(), append(tasks, task)); err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// ReadTasks loads the current task collection
func ReadTasks(t *testing.T, repo store.DataStore) []models.Task {
	t.Helper()

	tasks, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to load tasks: %v", err)
	}
	return tasks
}

// FindTask returns the task with id, or nil when it does not exist
func FindTask(t *testing.T, repo store.DataStore, id int) *models.Task {
	t.Helper()

	tasks := ReadTasks(t, repo)
	if idx := models.IndexOf(tasks, id); idx >= 0 {
		return &tasks[idx]
	}
	return nil
}

// WriteTaskFile writes raw contents to the store's backing file
func WriteTaskFile(t *testing.T, repo store.DataStore, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(repo.Path()), 0o755); err != nil {
		t.Fatalf("Failed to create task dir: %v", err)
	}
	if err := os.WriteFile(repo.Path(), []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write task file: %v", err)
	}
}

// ReadTaskFile returns the raw contents of the store's backing file
func ReadTaskFile(t *testing.T, repo store.DataStore) string {
	t.Helper()

	data, err := os.ReadFile(repo.Path())
	if err != nil {
		t.Fatalf("Failed to read task file: %v", err)
	}
	return string(data)
}
