// Package task holds the cli commands that manage tasks
// e.g., tracker add, tracker list ...
package task

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
)

// Commands returns every task subcommand, registered directly on the root
func Commands() []*cobra.Command {
	cmds := []*cobra.Command{
		AddCmd(),
		ListCmd(),
		UpdateCmd(),
		DeleteCmd(),
		MarkCmd(),
	}
	for _, cmd := range cmds {
		if cmd.Annotations == nil {
			cmd.Annotations = map[string]string{}
		}
		cmd.Annotations[cli.AnnotationRequiresApp] = "true"
	}
	return cmds
}

// addOutputFlags registers the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}
