package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okware/blog-management-api/internal/utils"
)

// DiskStore is an AssetStore backed by a local uploads directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the uploads directory if needed and returns a store
// rooted at it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Store writes data to a freshly generated filename. The name keeps the
// original base and extension with a random token in between, so concurrent
// uploads of identically named files cannot overwrite each other.
func (s *DiskStore) Store(data []byte, originalName string, maxSize int64) (string, error) {
	if int64(len(data)) > maxSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, len(data), maxSize)
	}

	name, err := generateFilename(originalName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return name, nil
}

// Delete removes a stored asset from disk.
func (s *DiskStore) Delete(filename string) error {
	// Stored names are generated by us, but never trust a path out of a record.
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(filename))); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

// generateFilename combines the sanitized original base name, a random
// token, and the original extension.
func generateFilename(originalName string) (string, error) {
	base := filepath.Base(originalName)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "file"
	}

	token, err := utils.GenerateAssetToken()
	if err != nil {
		return "", err
	}

	return stem + token + ext, nil
}
