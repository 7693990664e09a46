package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/cli/handler"
)

// MarkCmd returns the mark subcommand
func MarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Set a task's status",
		Long: `Set the status of a task.

Accepted statuses depend on the configured profile: by default a task can be
marked done or moved back to its open status (todo or pending). With
one_way_mark enabled only done is accepted.

Examples:
  tracker mark --id=3 --status=done
  tracker mark --id=3 --status=todo
`,
		Args: cli.NoArgs,
		RunE: handler.SimpleCommand(&markHandler{}),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().String("status", "", "New status (required)")
	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// markHandler implements handler.Handler for status changes
type markHandler struct{}

// Execute implements the Handler interface
func (h *markHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	taskID, err := args.RequireTaskID("id")
	if err != nil {
		return nil, err
	}
	status, err := args.RequireStatus("status")
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

	task, err := cliInstance.App.TaskService.MarkTask(ctx, taskID, status)
	if err != nil {
		return nil, err
	}

	return &taskResult{
		Task:    task,
		message: fmt.Sprintf("Task %d marked as %s", task.ID, task.Status),
	}, nil
}
