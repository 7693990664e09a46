package task

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/cli/handler"
	taskservice "github.com/thenoetrevino/tracker/internal/services/task"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List all tasks in the order they were added, one per line.

Examples:
  tracker list
  tracker list --status=done
  tracker list --json
`,
		Args: cli.NoArgs,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().String("status", "", "Only show tasks with this status")
	addOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

// listHandler implements handler.Handler for listing tasks
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	status, err := args.OptionalStatus("status")
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

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, taskservice.ListFilter{Status: status})
	if err != nil {
		return nil, err
	}

	return taskList(tasks), nil
}
