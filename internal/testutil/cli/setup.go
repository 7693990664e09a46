package cli

import (
	"testing"

	"github.com/thenoetrevino/tracker/internal/app"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/store"
	"github.com/thenoetrevino/tracker/internal/testutil"
)

// SetupCLITest creates a temp task file and returns both the store and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*store.FileStore, *app.App) {
	t.Helper()
	return SetupCLITestWithProfile(t, models.DefaultProfile())
}

// SetupCLITestWithProfile is SetupCLITest with an explicit deployment profile
func SetupCLITestWithProfile(t *testing.T, profile models.Profile) (*store.FileStore, *app.App) {
	t.Helper()
	repo := testutil.SetupTestStore(t)
	return repo, app.New(repo, profile)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
// Creates a todo task and returns its ID
func CreateTestTask(t *testing.T, repo store.DataStore, description string) int {
	t.Helper()
	return testutil.CreateTestTask(t, repo, description, models.StatusTodo)
}

// FindTask wraps testutil.FindTask for CLI tests
func FindTask(t *testing.T, repo store.DataStore, id int) *models.Task {
	t.Helper()
	return testutil.FindTask(t, repo, id)
}
