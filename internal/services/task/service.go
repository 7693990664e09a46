package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/store"
)

// Service defines all task-related business operations.
// Every operation is one read-modify-write cycle over the store.
type Service interface {
	// Read operations
	ListTasks(ctx context.Context, filter ListFilter) ([]models.Task, error)

	// Write operations
	AddTask(ctx context.Context, description string) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID int, description string) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
	MarkTask(ctx context.Context, taskID int, status models.Status) (*models.Task, error)

	// Profile returns the deployment profile the service enforces
	Profile() models.Profile
}

// ListFilter narrows ListTasks results. The zero value matches every task.
type ListFilter struct {
	Status models.Status
}

func (f ListFilter) matches(t models.Task) bool {
	return f.Status == "" || t.Status == f.Status
}

// Option configures optional service dependencies
type Option func(*service)

// WithClock overrides the time source used for task timestamps
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for mutation logging
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// service implements Service interface
type service struct {
	repo    store.DataStore
	profile models.Profile
	now     func() time.Time
	logger  *slog.Logger
}

// NewService creates a new task service
func NewService(repo store.DataStore, profile models.Profile, opts ...Option) Service {
	s := &service{
		repo:    repo,
		profile: profile,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile returns the deployment profile
func (s *service) Profile() models.Profile {
	return s.profile
}

// AddTask appends a new task with the next free id.
// The description is not validated here; callers decide what is acceptable.
func (s *service) AddTask(ctx context.Context, description string) (*models.Task, error) {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	id, err := models.NextID(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	task := models.Task{
		ID:          id,
		Description: description,
		Status:      s.profile.NewTaskStatus(),
	}
	if s.profile.RecordTimestamps {
		now := s.now()
		task.CreatedAt = models.NewTimestamp(now)
		task.UpdatedAt = models.NewTimestamp(now)
	}

	tasks = append(tasks, task)
	if err := s.repo.Save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	s.logger.Debug("task added", "task_id", task.ID)
	return &task, nil
}

// ListTasks returns the stored tasks in insertion order
func (s *service) ListTasks(ctx context.Context, filter ListFilter) ([]models.Task, error) {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Status == "" {
		return tasks, nil
	}

	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// UpdateTask replaces a task's description
func (s *service) UpdateTask(ctx context.Context, taskID int, description string) (*models.Task, error) {
	return s.mutate(ctx, taskID, "task updated", func(t *models.Task) {
		t.Description = description
	})
}

// MarkTask sets a task's status. The status is checked against the profile
// before the store is read.
func (s *service) MarkTask(ctx context.Context, taskID int, status models.Status) (*models.Task, error) {
	if !s.profile.Allows(status) {
		return nil, &InvalidStatusError{Status: status, Allowed: s.profile.AllowedStatuses()}
	}

	return s.mutate(ctx, taskID, "task marked", func(t *models.Task) {
		t.Status = status
	})
}

// DeleteTask removes a task. Nothing is written when no task matches.
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != taskID {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(tasks) {
		return notFound(taskID)
	}

	if err := s.repo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("task deleted", "task_id", taskID)
	return nil
}

// mutate applies fn to the task with taskID, refreshes updatedAt and saves.
// The store is left untouched when no task matches.
func (s *service) mutate(ctx context.Context, taskID int, action string, fn func(*models.Task)) (*models.Task, error) {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := models.IndexOf(tasks, taskID)
	if idx < 0 {
		return nil, notFound(taskID)
	}

	fn(&tasks[idx])
	s.touch(&tasks[idx])

	if err := s.repo.Save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to save task %d: %w", taskID, err)
	}

	s.logger.Debug(action, "task_id", taskID, "status", tasks[idx].Status)
	updated := tasks[idx]
	return &updated, nil
}

// touch refreshes updatedAt, keeping it strictly after the previous value
// even when the clock has not advanced.
func (s *service) touch(t *models.Task) {
	if !s.profile.RecordTimestamps {
		return
	}

	now := s.now()
	if t.UpdatedAt != nil && !now.After(t.UpdatedAt.Time) {
		now = t.UpdatedAt.Time.Add(time.Microsecond)
	}
	t.UpdatedAt = models.NewTimestamp(now)
}
