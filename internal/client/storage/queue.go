package storage

import (
	"context"

	"github.com/assetops/fieldsync/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines the durable store for queued operations, keyed by
// operation id. Implementations must survive process restarts.
type QueueStorage interface {
	// PutOperation stores or updates a queued operation
	PutOperation(ctx context.Context, op *models.Operation) error

	// GetOperation retrieves an operation by id
	// Returns ErrOperationNotFound if the operation doesn't exist
	GetOperation(ctx context.Context, id string) (*models.Operation, error)

	// ListOperations returns every persisted operation in unspecified order.
	// Callers sort by EnqueuedAt for FIFO replay.
	ListOperations(ctx context.Context) ([]*models.Operation, error)

	// DeleteOperation removes an operation by id.
	// Deleting a non-existent id is a no-op.
	DeleteOperation(ctx context.Context, id string) error

	// ClearOperations removes all queued operations
	// Used for explicit user-initiated reset
	ClearOperations(ctx context.Context) error
}
