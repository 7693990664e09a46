package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/cli/handler"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task with the given description.

Examples:
  # Add a task (human-readable output)
  tracker add --desc="Buy milk"

  # JSON output for agents
  tracker add --desc="Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(tracker add --desc="Buy milk" --quiet)
`,
		Args: cli.NoArgs,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	cmd.Flags().String("desc", "", "Task description (required)")
	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// addHandler implements handler.Handler for task creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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

	task, err := cliInstance.App.TaskService.AddTask(ctx, description)
	if err != nil {
		return nil, err
	}

	return &taskResult{
		Task:    task,
		message: fmt.Sprintf("Task added (ID: %d)", task.ID),
	}, nil
}
