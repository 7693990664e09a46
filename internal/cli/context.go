package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/tracker/internal/app"
)

// ErrNoApp is returned when a command runs without an application in its context
var ErrNoApp = errors.New("application not initialized")

// AnnotationRequiresApp marks commands that need the application installed
// in their context before they run
const AnnotationRequiresApp = "tracker.requires-app"

type contextKey string

const appContextKey contextKey = "tracker.app"

// WithApp returns a context carrying the application container.
// The root command installs it before any subcommand runs; tests install
// their own container the same way.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey, a)
}

// GetCLIFromContext returns the CLI wrapping the application stored in ctx
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(appContextKey).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return &CLI{App: a, ctx: ctx}, nil
}
