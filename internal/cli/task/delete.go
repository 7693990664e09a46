package task

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/cli/handler"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task by ID.

New tasks get one more than the largest id in the file, so a deleted id is
not reused while a higher id exists. Deleting the task with the largest id
makes that id available to the next add.

Examples:
  tracker delete --id=3
`,
		Args: cli.NoArgs,
		RunE: handler.SimpleCommand(&deleteHandler{}),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// deleteHandler implements handler.Handler for task deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.RequireTaskID("id")
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		return nil, err
	}

	return &deleteResult{ID: taskID}, nil
}
