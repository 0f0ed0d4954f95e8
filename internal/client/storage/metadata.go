package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the wall-clock time (epoch millis) of the
	// last completed sync pass
	SaveLastSyncTime(ctx context.Context, unixMilli int64) error

	// GetLastSyncTime retrieves the time of the last completed sync pass
	// Returns 0 if no sync has been performed yet
	GetLastSyncTime(ctx context.Context) (int64, error)
}
