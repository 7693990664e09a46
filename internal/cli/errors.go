package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tracker/internal/models"
	taskservice "github.com/thenoetrevino/tracker/internal/services/task"
	"github.com/thenoetrevino/tracker/internal/store"
)

// Error codes reported in JSON output
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeTaskNotFound   = "TASK_NOT_FOUND"
	CodeInvalidStatus  = "INVALID_STATUS"
	CodeMalformedStore = "MALFORMED_STORE"
	CodeConfig         = "CONFIG_ERROR"
	CodeGeneric        = "ERROR"
)

// ValidationError reports a missing or unusable command option.
// Commands return it before touching the task file.
type ValidationError struct {
	Flag    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for flag
func NewValidationError(flag, format string, args ...any) *ValidationError {
	return &ValidationError{Flag: flag, Message: fmt.Sprintf(format, args...)}
}

// ConfigError wraps a failure to load or apply configuration
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Failure is the user-facing description of a command error
type Failure struct {
	Code       string
	Message    string
	Suggestion string
	ExitCode   int
}

// Classify maps err to the code, suggestion and exit code shown to the user
func Classify(err error) Failure {
	f := Failure{Code: CodeGeneric, Message: err.Error(), ExitCode: ExitError}

	var (
		validationErr *ValidationError
		statusErr     *taskservice.InvalidStatusError
		malformedErr  *store.MalformedStoreError
		configErr     *ConfigError
	)

	switch {
	case errors.As(err, &validationErr):
		f.Code = CodeValidation
		f.ExitCode = ExitUsage
		f.Suggestion = "Run the command with --help to see its options"
	case errors.Is(err, taskservice.ErrTaskNotFound):
		f.Code = CodeTaskNotFound
		f.ExitCode = ExitNotFound
		f.Suggestion = "Run 'tracker list' to see existing task ids"
	case errors.As(err, &statusErr):
		f.Code = CodeInvalidStatus
		f.ExitCode = ExitValidation
		f.Suggestion = "Use one of: " + models.JoinStatuses(statusErr.Allowed)
	case errors.Is(err, taskservice.ErrInvalidStatus):
		f.Code = CodeInvalidStatus
		f.ExitCode = ExitValidation
	case errors.As(err, &malformedErr):
		f.Code = CodeMalformedStore
		f.ExitCode = ExitDataErr
		f.Suggestion = fmt.Sprintf("Repair or move %s; it was not modified", malformedErr.Path)
	case errors.As(err, &configErr):
		f.Code = CodeConfig
		f.ExitCode = ExitError
		f.Suggestion = "Check the config file and TRACKER_* environment variables"
	case errors.Is(err, models.ErrIDSpaceExhausted):
		f.Suggestion = "Delete the task with the largest id to free it for new tasks"
	}

	return f
}

// ReportError prints err through the formatter and returns the exit code
func ReportError(formatter *OutputFormatter, err error) int {
	if err == nil {
		return ExitSuccess
	}

	f := Classify(err)
	if fmtErr := formatter.ErrorWithSuggestion(f.Code, f.Message, f.Suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return f.ExitCode
}
