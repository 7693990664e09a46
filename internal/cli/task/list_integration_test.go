package task

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/store"
	"github.com/thenoetrevino/tracker/internal/testutil"
	"github.com/thenoetrevino/tracker/internal/testutil/cli"
)

func TestListTasks_Positive(t *testing.T) {
	repo, app := cli.SetupCLITest(t)

	t.Run("Empty list", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})

		require.NoError(t, err)
		assert.Contains(t, output, "No tasks found")
	})

	t.Run("Empty list as JSON is an empty array", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})

		require.NoError(t, err)
		assert.Equal(t, []any{}, cli.JSONData(t, output))
	})

	cli.CreateTestTask(t, repo, "Buy milk")
	cli.CreateTestTask(t, repo, "Walk dog")
	testutil.CreateTestTask(t, repo, "Read book", models.StatusDone)

	t.Run("Lists every task in insertion order", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(output), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "[1] Buy milk - todo")
		assert.Contains(t, lines[1], "[2] Walk dog - todo")
		assert.Contains(t, lines[2], "[3] Read book - done")
	})

	t.Run("Quiet mode prints ids", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "1\n2\n3\n", output)
	})

	t.Run("Status filter", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "done", "--json"})

		require.NoError(t, err)
		tasks := cli.JSONData(t, output).([]any)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Read book", tasks[0].(map[string]any)["description"])
	})

	t.Run("Listing does not rewrite the file", func(t *testing.T) {
		before := testutil.ReadTaskFile(t, repo)
		_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})
		require.NoError(t, err)
		assert.Equal(t, before, testutil.ReadTaskFile(t, repo))
	})
}

func TestListTasks_Negative(t *testing.T) {
	t.Run("Malformed task file", func(t *testing.T) {
		repo, app := cli.SetupCLITest(t)
		testutil.WriteTaskFile(t, repo, `{"not": "an array"}`)

		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})

		require.Error(t, err)
		var malformed *store.MalformedStoreError
		assert.True(t, errors.As(err, &malformed))
		assert.Empty(t, output)
		assert.Equal(t, `{"not": "an array"}`, testutil.ReadTaskFile(t, repo))
	})

	t.Run("Empty status filter", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", ""})
		assert.Error(t, err)
	})
}
