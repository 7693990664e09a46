package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tracker/internal/config"
	"github.com/thenoetrevino/tracker/internal/models"
	taskservice "github.com/thenoetrevino/tracker/internal/services/task"
	"github.com/thenoetrevino/tracker/internal/store"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Storage layer (the JSON task file)
	repo store.DataStore

	logger *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo store.DataStore, profile models.Profile, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	svcOpts := []taskservice.Option{taskservice.WithLogger(cfg.logger)}
	if cfg.clock != nil {
		svcOpts = append(svcOpts, taskservice.WithClock(cfg.clock))
	}

	return &App{
		repo:        repo,
		logger:      cfg.logger,
		TaskService: taskservice.NewService(repo, profile, svcOpts...),
	}
}

// FromConfig builds the App described by cfg, creating the backing file
// first when the config asks for it.
func FromConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	repo, err := store.New(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	if cfg.ShouldAutoInit() {
		if err := repo.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize task file: %w", err)
		}
	}

	return New(repo, cfg.Profile(), opts...), nil
}

// Repo returns the underlying store for direct access
func (a *App) Repo() store.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// The file store holds nothing open between operations.
func (a *App) Close() error {
	a.logger.Debug("app closed", "path", a.repo.Path())
	return nil
}
