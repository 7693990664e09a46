package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trackercli "github.com/thenoetrevino/tracker/internal/cli"
	taskservice "github.com/thenoetrevino/tracker/internal/services/task"
	"github.com/thenoetrevino/tracker/internal/testutil"
	"github.com/thenoetrevino/tracker/internal/testutil/cli"
)

func TestDeleteTask_Positive(t *testing.T) {
	repo, app := cli.SetupCLITest(t)

	t.Run("Delete task", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, repo, "Task to Delete")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1"})

		require.NoError(t, err)
		assert.Contains(t, output, "Task 1 deleted")
		assert.Nil(t, cli.FindTask(t, repo, taskID), "Task should be deleted from the file")
	})

	t.Run("Delete task with quiet flag", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, repo, "Task to Delete Quietly")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1", "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "1\n", output)
		assert.Nil(t, cli.FindTask(t, repo, taskID))
	})

	t.Run("Delete task with json flag", func(t *testing.T) {
		cli.CreateTestTask(t, repo, "Task to Delete with JSON")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1", "--json"})

		require.NoError(t, err)
		data := cli.JSONData(t, output).(map[string]any)
		assert.Equal(t, float64(1), data["id"])
	})

	t.Run("Remaining tasks keep their ids and order", func(t *testing.T) {
		cli.CreateTestTask(t, repo, "first")
		cli.CreateTestTask(t, repo, "second")
		cli.CreateTestTask(t, repo, "third")

		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "2"})
		require.NoError(t, err)

		tasks := testutil.ReadTasks(t, repo)
		require.Len(t, tasks, 2)
		assert.Equal(t, 1, tasks[0].ID)
		assert.Equal(t, 3, tasks[1].ID)
	})
}

func TestDeleteTask_Negative(t *testing.T) {
	repo, app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, repo, "Keep me")
	before := testutil.ReadTaskFile(t, repo)

	t.Run("Task not found", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "42"})

		assert.ErrorIs(t, err, taskservice.ErrTaskNotFound)
		assert.Equal(t, before, testutil.ReadTaskFile(t, repo))
	})

	t.Run("Missing id", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{})

		var ve *trackercli.ValidationError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("Invalid id type", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "abc"})
		assert.Error(t, err)
		assert.Equal(t, before, testutil.ReadTaskFile(t, repo))
	})
}

func TestDeleteTask_HighestIDIsReused(t *testing.T) {
	repo, app := cli.SetupCLITest(t)

	cli.CreateTestTask(t, repo, "first")
	highest := cli.CreateTestTask(t, repo, "second")

	_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "2"})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--desc", "third", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "2\n", output)
	assert.Equal(t, "third", cli.FindTask(t, repo, highest).Description)

	assert.Contains(t, DeleteCmd().Long, "Deleting the task with the largest id")
}
