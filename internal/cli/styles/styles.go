// Package styles holds the lipgloss styles used for human-readable output
package styles

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tracker/internal/config/colors"
	"github.com/thenoetrevino/tracker/internal/models"
)

var (
	// Text styles
	SubtitleStyle lipgloss.Style
	IDStyle       lipgloss.Style // For task ids like "[3]"
	ValueStyle    lipgloss.Style // For descriptions

	// Status styles
	OpenStyle lipgloss.Style
	DoneStyle lipgloss.Style

	// Message styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme.
// Styles stay at their zero value, which renders plain text, until Init runs.
func Init(scheme colors.ColorScheme) {
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	IDStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	OpenStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Open))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Done))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Warning))
}

// Reset returns every style to plain text
func Reset() {
	SubtitleStyle = lipgloss.Style{}
	IDStyle = lipgloss.Style{}
	ValueStyle = lipgloss.Style{}
	OpenStyle = lipgloss.Style{}
	DoneStyle = lipgloss.Style{}
	SuccessStyle = lipgloss.Style{}
	ErrorStyle = lipgloss.Style{}
	WarningStyle = lipgloss.Style{}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// StatusStyle returns the style for a task status
func StatusStyle(status models.Status) lipgloss.Style {
	if status.IsDone() {
		return DoneStyle
	}
	return OpenStyle
}

// RenderTaskLine renders a task as "[id] description - status"
func RenderTaskLine(task models.Task) string {
	return fmt.Sprintf("%s %s - %s",
		IDStyle.Render(fmt.Sprintf("[%d]", task.ID)),
		ValueStyle.Render(task.Description),
		StatusStyle(task.Status).Render(task.Status.String()))
}

// RenderWarning renders a notice line that is not an error
func RenderWarning(message string) string {
	return WarningStyle.Render(message)
}

// RenderSuccess renders a confirmation line prefixed with a check mark
func RenderSuccess(message string) string {
	return SuccessStyle.Render("✓") + " " + message
}

// Fprintln writes a styled line to w, downsampling colors to what w supports
func Fprintln(w io.Writer, line string) error {
	_, err := lipgloss.Fprintln(w, line)
	return err
}
