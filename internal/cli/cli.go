package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tracker/internal/app"
	"github.com/thenoetrevino/tracker/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context
}

// NewCLI builds the application container for the configured task file
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.FromConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracker: %w", err)
	}

	return &CLI{
		App: application,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
