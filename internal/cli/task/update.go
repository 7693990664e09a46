package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/cli/handler"
)

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change a task's description",
		Long: `Replace the description of an existing task.

Examples:
  tracker update --id=3 --desc="Buy oat milk"
`,
		Args: cli.NoArgs,
		RunE: handler.SimpleCommand(&updateHandler{}),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().String("desc", "", "New description (required)")
	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// updateHandler implements handler.Handler for task updates
type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.RequireTaskID("id")
	if err != nil {
		return nil, err
	}
	description, err := args.RequireString("desc")
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

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, taskID, description)
	if err != nil {
		return nil, err
	}

	return &taskResult{
		Task:    task,
		message: fmt.Sprintf("Task %d updated", task.ID),
	}, nil
}
