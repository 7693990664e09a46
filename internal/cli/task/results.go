package task

import (
	"fmt"
	"io"

	"github.com/thenoetrevino/tracker/internal/cli/styles"
	"github.com/thenoetrevino/tracker/internal/models"
)

// taskResult is the output of a command that changed a single task.
// JSON output is the task itself.
type taskResult struct {
	*models.Task
	message string
}

// Render prints the confirmation line
func (r *taskResult) Render(w io.Writer) error {
	return styles.Fprintln(w, styles.RenderSuccess(r.message))
}

// taskList is the output of the list command
type taskList []models.Task

// GetIDs implements the GetIDs interface for quiet mode output
func (l taskList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}

// Render prints one line per task
func (l taskList) Render(w io.Writer) error {
	if len(l) == 0 {
		return styles.Fprintln(w, styles.RenderWarning("No tasks found"))
	}
	for _, t := range l {
		if err := styles.Fprintln(w, styles.RenderTaskLine(t)); err != nil {
			return err
		}
	}
	return nil
}

// deleteResult is the output of the delete command
type deleteResult struct {
	ID int `json:"id"`
}

// GetID implements the GetID interface for quiet mode output
func (r *deleteResult) GetID() int {
	return r.ID
}

// Render prints the confirmation line
func (r *deleteResult) Render(w io.Writer) error {
	return styles.Fprintln(w, styles.RenderSuccess(fmt.Sprintf("Task %d deleted", r.ID)))
}
