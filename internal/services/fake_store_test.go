package services

import (
	"fmt"

	"github.com/okware/blog-management-api/internal/storage"
)

// fakeAssetStore is an in-memory AssetStore for exercising the services
// without touching disk. Failure modes are injectable per test.
type fakeAssetStore struct {
	files     map[string][]byte
	deleted   []string
	storeErr  error
	deleteErr error
	seq       int
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{files: make(map[string][]byte)}
}

func (f *fakeAssetStore) Store(data []byte, originalName string, maxSize int64) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	if int64(len(data)) > maxSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", storage.ErrTooLarge, len(data), maxSize)
	}
	f.seq++
	name := fmt.Sprintf("%s-%d", originalName, f.seq)
	f.files[name] = data
	return name, nil
}

func (f *fakeAssetStore) Delete(filename string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, filename)
	delete(f.files, filename)
	return nil
}

func (f *fakeAssetStore) has(filename string) bool {
	_, ok := f.files[filename]
	return ok
}
