package trackers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/repositories"
)

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	// Dir holds one file per key. Created on first save.
	Dir string
	// Perm is the mode of written files (default 0644)
	Perm os.FileMode
}

// fileRepository writes each tracker as an indented JSON file
type fileRepository struct {
	dir  string
	perm os.FileMode
}

// NewFileRepository creates a new file-backed tracker repository
func NewFileRepository(cfg *FileRepoConfig) Repository {
	if cfg == nil {
		panic("FileRepoConfig cannot be nil")
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	perm := cfg.Perm
	if perm == 0 {
		perm = 0o644
	}

	return &fileRepository{dir: dir, perm: perm}
}

// path maps a key onto a file inside dir. Keys cannot escape the directory.
func (r *fileRepository) path(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", errors.InvalidArgumentf("save key %q must be a plain file name", key)
	}
	return filepath.Join(r.dir, key), nil
}

// Save writes state to <dir>/<key> via a temp file and rename
func (r *fileRepository) Save(ctx context.Context, key string, state *tracker.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := r.path(key)
	if err != nil {
		return err
	}
	if state == nil {
		return errors.InvalidArgument("tracker state cannot be nil")
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize tracker state")
	}

	if err := atomicWriteFile(path, data, r.perm); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// Load reads <dir>/<key>
func (r *fileRepository) Load(ctx context.Context, key string) (*tracker.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := r.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repositories.NewRecordNotFoundError(key)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return decode(key, data)
}

// atomicWriteFile writes data next to filename then renames it into place
// so a crash never leaves a half-written save
func atomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-tracker-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	var success bool
	defer func() {
		if !success {
			if err := os.Remove(tempFile.Name()); err != nil && !os.IsNotExist(err) {
				log.Printf("[STORAGE] Failed to remove temp file %s: %v", tempFile.Name(), err)
			}
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tempFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
