package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tracker/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestStore returns a store rooted in a fresh temp directory
func setupTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data", "tasks.json"))
	require.NoError(t, err)
	return s
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// ============================================================================
// CONSTRUCTION
// ============================================================================

func TestNew_EmptyPath(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

// ============================================================================
// INITIALIZE
// ============================================================================

func TestInitialize_CreatesEmptyCollection(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	require.NoError(t, s.Initialize(ctx))
	assert.Equal(t, "[]\n", readFile(t, s.Path()))

	tasks, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestInitialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Save(ctx, []models.Task{{ID: 1, Description: "keep me", Status: models.StatusTodo}}))
	before := readFile(t, s.Path())

	require.NoError(t, s.Initialize(ctx))
	assert.Equal(t, before, readFile(t, s.Path()), "Initialize must not touch an existing file")
}

func TestInitialize_LeavesInvalidFileAlone(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	writeFile(t, s.Path(), "not json at all")

	require.NoError(t, s.Initialize(ctx))
	assert.Equal(t, "not json at all", readFile(t, s.Path()))
}

// ============================================================================
// LOAD
// ============================================================================

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := setupTestStore(t)

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	_, statErr := os.Stat(s.Path())
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "Load must not create the file")
}

func TestLoad_PreservesOrder(t *testing.T) {
	s := setupTestStore(t)
	writeFile(t, s.Path(), `[
    {"id": 3, "description": "third", "status": "todo"},
    {"id": 1, "description": "first", "status": "done"},
    {"id": 2, "description": "second", "status": "pending"}
]`)

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{tasks[0].ID, tasks[1].ID, tasks[2].ID})
	assert.Equal(t, models.StatusDone, tasks[1].Status)
	assert.Nil(t, tasks[0].CreatedAt)
}

func TestLoad_LegacyTimestamps(t *testing.T) {
	s := setupTestStore(t)
	writeFile(t, s.Path(), `[
    {
        "id": 1,
        "description": "buy milk",
        "status": "todo",
        "createdAt": "2024-05-01T09:30:00.250000",
        "updatedAt": "2024-05-01T09:30:00.250000"
    }
]`)

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].CreatedAt)
	assert.Equal(t, 2024, tasks[0].CreatedAt.Year())
	assert.Equal(t, 250*time.Millisecond, time.Duration(tasks[0].CreatedAt.Nanosecond()))
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty file", ""},
		{"whitespace only", "  \n"},
		{"invalid json", "[{"},
		{"object instead of array", `{"tasks": []}`},
		{"null document", "null"},
		{"string id", `[{"id": "1", "description": "x", "status": "todo"}]`},
		{"zero id", `[{"id": 0, "description": "x", "status": "todo"}]`},
		{"negative id", `[{"id": -4, "description": "x", "status": "todo"}]`},
		{"fractional id", `[{"id": 1.5, "description": "x", "status": "todo"}]`},
		{"missing description", `[{"id": 1, "status": "todo"}]`},
		{"missing status", `[{"id": 1, "description": "x"}]`},
		{"empty status", `[{"id": 1, "description": "x", "status": ""}]`},
		{"unknown field", `[{"id": 1, "description": "x", "status": "todo", "priority": 3}]`},
		{"bad timestamp", `[{"id": 1, "description": "x", "status": "todo", "createdAt": "last tuesday"}]`},
		{"duplicate ids", `[{"id": 1, "description": "a", "status": "todo"}, {"id": 1, "description": "b", "status": "done"}]`},
		{"trailing content", `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestStore(t)
			writeFile(t, s.Path(), tt.contents)

			tasks, err := s.Load(context.Background())
			assert.Nil(t, tasks)
			require.Error(t, err)

			var malformed *MalformedStoreError
			require.True(t, errors.As(err, &malformed), "expected MalformedStoreError, got %T: %v", err, err)
			assert.Equal(t, s.Path(), malformed.Path)
			assert.True(t, IsMalformed(err))

			assert.Equal(t, tt.contents, readFile(t, s.Path()), "a failed load must not rewrite the file")
		})
	}
}

func TestLoad_SchemaErrorPath(t *testing.T) {
	s := setupTestStore(t)
	writeFile(t, s.Path(), `[{"id": 1, "description": "a", "status": "todo"}, {"id": 2, "description": 5, "status": "todo"}]`)

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[1].description")
}

func TestLoad_CancelledContext(t *testing.T) {
	s := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ============================================================================
// SAVE
// ============================================================================

func TestSave_FullReplacement(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	require.NoError(t, s.Save(ctx, []models.Task{
		{ID: 1, Description: "a", Status: models.StatusTodo},
		{ID: 2, Description: "b", Status: models.StatusTodo},
	}))
	require.NoError(t, s.Save(ctx, []models.Task{{ID: 2, Description: "b", Status: models.StatusDone}}))

	tasks, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].ID)
	assert.Equal(t, models.StatusDone, tasks[0].Status)
}

func TestSave_NilCollection(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Save(context.Background(), nil))
	assert.Equal(t, "[]\n", readFile(t, s.Path()))
}

func TestSave_Format(t *testing.T) {
	s := setupTestStore(t)
	ts := models.NewTimestamp(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, s.Save(context.Background(), []models.Task{
		{ID: 1, Description: "fish & chips <today>", Status: models.StatusTodo, CreatedAt: ts, UpdatedAt: ts},
	}))

	want := `[
    {
        "id": 1,
        "description": "fish & chips <today>",
        "status": "todo",
        "createdAt": "2025-06-01T12:00:00Z",
        "updatedAt": "2025-06-01T12:00:00Z"
    }
]
`
	assert.Equal(t, want, readFile(t, s.Path()))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Save(ctx, []models.Task{{ID: i, Description: "x", Status: models.StatusTodo}}))
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.json", entries[0].Name())
}

// ============================================================================
// ROUND TRIP
// ============================================================================

func TestRoundTrip_SaveLoadIsStable(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty", "[]\n"},
		{"tool written", `[
    {
        "id": 2,
        "description": "walk dog",
        "status": "done",
        "createdAt": "2025-06-01T12:00:00.123Z",
        "updatedAt": "2025-06-02T08:00:00Z"
    },
    {
        "id": 3,
        "description": "read book",
        "status": "todo"
    }
]
`},
		{"legacy timestamps", `[
    {
        "id": 1,
        "description": "buy milk",
        "status": "todo",
        "createdAt": "2024-05-01T09:30:00.250000",
        "updatedAt": "2024-05-01T09:30:00"
    }
]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := setupTestStore(t)
			writeFile(t, s.Path(), tt.contents)

			tasks, err := s.Load(ctx)
			require.NoError(t, err)
			require.NoError(t, s.Save(ctx, tasks))

			assert.Equal(t, tt.contents, readFile(t, s.Path()))
		})
	}
}

// ============================================================================
// SCHEMA HELPERS
// ============================================================================

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"#":              "",
		"/0":             "[0]",
		"/3/status":      "[3].status",
		"#/1/createdAt":  "[1].createdAt",
		"/a~1b/0":        "a/b[0]",
		"/weird~0key/ok": "weird~key.ok",
	}

	for in, want := range tests {
		assert.Equal(t, want, jsonPointerToPath(in), "pointer %q", in)
	}
}
