package storage

import "errors"

var (
	// ErrTooLarge is returned when an upload exceeds the caller's size ceiling.
	ErrTooLarge = errors.New("asset store: file exceeds size limit")
	// ErrWriteFailed wraps an I/O failure while persisting an asset.
	ErrWriteFailed = errors.New("asset store: write failed")
	// ErrDeleteFailed wraps an I/O failure while removing an asset.
	ErrDeleteFailed = errors.New("asset store: delete failed")
)

// AssetStore persists uploaded binary files under generated,
// collision-resistant names. Callers supply the size ceiling per upload
// (thumbnails and avatars have different limits).
type AssetStore interface {
	// Store writes data under a new name derived from originalName and
	// returns the generated filename. Fails with ErrTooLarge when data
	// exceeds maxSize, or ErrWriteFailed on I/O error. No retries.
	Store(data []byte, originalName string, maxSize int64) (string, error)

	// Delete removes a stored asset. Best-effort: callers decide whether
	// a failure aborts the surrounding operation.
	Delete(filename string) error
}
