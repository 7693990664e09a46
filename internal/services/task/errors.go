package task

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tracker/internal/models"
)

// Task-related errors
var (
	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")

	// Validation errors
	ErrInvalidStatus = errors.New("invalid status")
)

// InvalidStatusError reports a mark request for a status outside the
// profile's allowed set. It unwraps to ErrInvalidStatus.
type InvalidStatusError struct {
	Status  models.Status
	Allowed []models.Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q (must be: %s)", e.Status, models.JoinStatuses(e.Allowed))
}

// Unwrap returns ErrInvalidStatus so callers can use errors.Is.
func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// notFound wraps ErrTaskNotFound with the requested id
func notFound(taskID int) error {
	return fmt.Errorf("task %d: %w", taskID, ErrTaskNotFound)
}
