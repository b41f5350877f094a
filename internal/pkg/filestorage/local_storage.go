package filestorage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yigit/pharmalab/internal/pkg/logger"
)

// LocalStorage manages application data directories on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage ensures basePath exists and returns a storage rooted there
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the storage root
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// EnsureDir creates a subdirectory under the root and returns its full path
func (s *LocalStorage) EnsureDir(subdir string) (string, error) {
	full := filepath.Join(s.basePath, filepath.Clean("/"+subdir))
	if err := os.MkdirAll(full, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", full, err)
	}
	return full, nil
}

// Path joins name onto a subdirectory of the root without touching the filesystem
func (s *LocalStorage) Path(subdir, name string) string {
	return filepath.Join(s.basePath, filepath.Clean("/"+subdir), filepath.Base(name))
}
