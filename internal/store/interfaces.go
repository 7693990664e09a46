// Package store persists the task collection as a JSON array in a local file
package store

import (
	"context"

	"github.com/thenoetrevino/tracker/internal/models"
)

// DataStore defines the persistence operations the task service depends on.
// The collection is the unit of persistence: callers load it whole and save it whole.
type DataStore interface {
	// Initialize creates an empty backing file if none exists
	Initialize(ctx context.Context) error
	// Load reads the full collection in stored order
	Load(ctx context.Context) ([]models.Task, error)
	// Save replaces the backing file with the given collection
	Save(ctx context.Context, tasks []models.Task) error
	// Path returns the location of the backing file
	Path() string
}
