package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// LogFile is the name of the log file inside the log directory
const LogFile = "tracker.log"

// Logger is the global slog instance for the application
var Logger = slog.New(slog.DiscardHandler)

// Init initializes the logging system, appending to <dir>/tracker.log.
// Records go through a charmbracelet/log text handler so the file stays
// readable.
func Init(dir, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(dir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	Use(NewHandler(file, lvl))

	// Redirect standard log package output to the same file
	stdlog.SetOutput(file)
	stdlog.SetFlags(stdlog.LstdFlags)

	return nil
}

// NewHandler returns a slog handler writing leveled text records to w
func NewHandler(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "tracker",
	})
}

// Use installs handler as the process-wide default logger
func Use(handler slog.Handler) {
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// Discard silences all logging. Used when the log file cannot be opened.
func Discard() {
	Use(slog.DiscardHandler)
	stdlog.SetOutput(io.Discard)
}

// ParseLevel parses a level name into a charmbracelet/log Level
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("invalid log level %q (must be: debug, info, warn, error)", level)
	}
}
