package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/models"
)

// ParseStatus normalizes a status typed on the command line.
// Whether the status is allowed is decided by the task service.
func ParseStatus(value string) models.Status {
	return models.Status(strings.ToLower(strings.TrimSpace(value)))
}

// NewFormatter builds the formatter for a command's --json and --quiet flags
func NewFormatter(jsonOutput, quietMode bool) *OutputFormatter {
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// NoArgs rejects positional arguments with a usage error.
// Commands take all their input through flags.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return NewValidationError("", "unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}
