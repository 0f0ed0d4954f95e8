package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTime = "last_sync_time"
)

// SaveLastSyncTime saves the wall-clock time of the last completed sync pass
func (s *Storage) SaveLastSyncTime(ctx context.Context, unixMilli int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timeBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timeBytes, uint64(unixMilli))

		if err := bucket.Put([]byte(keyLastSyncTime), timeBytes); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncTime retrieves the time of the last completed sync pass
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (int64, error) {
	var unixMilli int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timeBytes := bucket.Get([]byte(keyLastSyncTime))
		if timeBytes == nil {
			// Синхронизация еще не выполнялась
			unixMilli = 0
			return nil
		}

		unixMilli = int64(binary.BigEndian.Uint64(timeBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return unixMilli, nil
}
