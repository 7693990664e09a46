package handler

import (
	"strings"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
)

// RequireString returns a string flag that must be set and not blank.
// The value is returned as typed; only the emptiness check trims it.
func (a *Arguments) RequireString(name string) (string, error) {
	if !a.Has(name) {
		return "", cli.NewValidationError(name, "--%s is required", name)
	}
	value := a.GetString(name, "")
	if strings.TrimSpace(value) == "" {
		return "", cli.NewValidationError(name, "--%s must not be empty", name)
	}
	return value, nil
}

// RequireTaskID returns a task id flag that must be set and positive
func (a *Arguments) RequireTaskID(name string) (int, error) {
	if !a.Has(name) {
		return 0, cli.NewValidationError(name, "--%s is required", name)
	}
	id := a.GetInt(name, 0)
	if id <= 0 {
		return 0, cli.NewValidationError(name, "--%s must be greater than 0", name)
	}
	return id, nil
}

// RequireStatus returns a status flag that must be set and not blank.
// Membership in the allowed set is checked by the task service.
func (a *Arguments) RequireStatus(name string) (models.Status, error) {
	value, err := a.RequireString(name)
	if err != nil {
		return "", err
	}
	return cli.ParseStatus(value), nil
}

// OptionalStatus returns a status flag, or "" when it was not set
func (a *Arguments) OptionalStatus(name string) (models.Status, error) {
	if !a.Has(name) {
		return "", nil
	}
	return a.RequireStatus(name)
}
