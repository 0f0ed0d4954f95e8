package storage

import "errors"

// Common client storage errors
var (
	// ErrOperationNotFound indicates that a queued operation was not found
	ErrOperationNotFound = errors.New("operation not found")

	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session data not found")

	// ErrAssetNotFound indicates that asset was not found in the local cache
	ErrAssetNotFound = errors.New("asset not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
