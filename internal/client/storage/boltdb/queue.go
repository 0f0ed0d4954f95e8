package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/models"
)

// PutOperation stores or updates a queued operation in BoltDB
func (s *Storage) PutOperation(ctx context.Context, op *models.Operation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем операцию в JSON
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(op.ID), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetOperation retrieves a queued operation by id
func (s *Storage) GetOperation(ctx context.Context, id string) (*models.Operation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var op *models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrOperationNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrOperationNotFound
		}

		// Десериализуем
		op = &models.Operation{}
		if err := json.Unmarshal(data, op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return op, nil
}

// ListOperations returns every persisted operation
func (s *Storage) ListOperations(ctx context.Context) ([]*models.Operation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		// Итерируемся по всем операциям
		return bucket.ForEach(func(k, v []byte) error {
			op := &models.Operation{}
			if err := json.Unmarshal(v, op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}

			ops = append(ops, op)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return ops, nil
}

// DeleteOperation removes an operation by id.
// Deleting a non-existent id is a no-op.
func (s *Storage) DeleteOperation(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		// bbolt Delete не возвращает ошибку для отсутствующего ключа
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}

		return nil
	})
}

// ClearOperations removes all queued operations
func (s *Storage) ClearOperations(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		// Пересоздаем bucket целиком
		if err := tx.DeleteBucket(bucketQueue); err != nil {
			return fmt.Errorf("failed to delete queue bucket: %w", err)
		}

		if _, err := tx.CreateBucket(bucketQueue); err != nil {
			return fmt.Errorf("failed to recreate queue bucket: %w", err)
		}

		return nil
	})
}
