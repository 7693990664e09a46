package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/tracker/internal/models"
)

// File permissions for the backing file and its directory
const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// FileStore keeps the task collection in a single JSON file.
// All writes go through a temp file and an atomic rename.
type FileStore struct {
	path string
}

// New creates a store backed by the file at path
func New(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file location
func (s *FileStore) Path() string {
	return s.path
}

// Initialize creates the backing file holding an empty collection.
// An existing file is left alone even if its contents are invalid.
func (s *FileStore) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat task file: %w", err)
	}

	slog.Debug("initializing task file", "path", s.path)
	if err := writeFileAtomic(s.path, []byte("[]\n"), filePerm); err != nil {
		return fmt.Errorf("failed to initialize task file: %w", err)
	}
	return nil
}

// Load reads and validates the full collection.
// A missing file is an empty collection; a present but invalid file is a
// *MalformedStoreError.
func (s *FileStore) Load(ctx context.Context) ([]models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	tasks, err := decodeCollection(data)
	if err != nil {
		return nil, &MalformedStoreError{Path: s.path, Err: err}
	}
	return tasks, nil
}

// Save overwrites the backing file with the full collection
func (s *FileStore) Save(ctx context.Context, tasks []models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeCollection(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	if err := writeFileAtomic(s.path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}

	slog.Debug("saved task file", "path", s.path, "tasks", len(tasks))
	return nil
}

// encodeCollection renders tasks with 4-space indentation and a trailing newline
func encodeCollection(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeCollection validates data against the schema and decodes it strictly
func decodeCollection(data []byte) ([]models.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("file is empty")
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var tasks []models.Task
	if err := dec.Decode(&tasks); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("invalid JSON: trailing content")
	}

	seen := make(map[int]struct{}, len(tasks))
	for i, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, &SchemaError{
				Path:    fmt.Sprintf("[%d].id", i),
				Message: fmt.Sprintf("duplicate task id %d", t.ID),
			}
		}
		seen[t.ID] = struct{}{}
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// writeFileAtomic writes data to a temp file next to path, syncs it and
// renames it over path. A crash leaves either the old or the new contents.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	// Some filesystems refuse fsync on directories
	if err := f.Sync(); err != nil {
		slog.Debug("directory sync failed", "dir", dir, "error", err)
	}
	return nil
}
