package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/models"
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// createTestOperation создает тестовую операцию очереди
func createTestOperation(id string, opType models.OperationType, subjectID, enqueuedAt int64) *models.Operation {
	return &models.Operation{
		ID:         id,
		Type:       opType,
		SubjectID:  subjectID,
		Payload:    []byte(`{"fields":{"status":"repair"}}`),
		EnqueuedAt: enqueuedAt,
		RetryCount: 0,
		Status:     models.StatusPending,
	}
}

func TestStorage_PutOperation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	op := createTestOperation("op-1", models.OperationUpdate, 42, 1000)
	require.NoError(t, store.PutOperation(ctx, op))

	got, err := store.GetOperation(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, op.ID, got.ID)
	assert.Equal(t, op.Type, got.Type)
	assert.Equal(t, op.SubjectID, got.SubjectID)
	assert.Equal(t, op.EnqueuedAt, got.EnqueuedAt)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestStorage_PutOperation_Update(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	op := createTestOperation("op-1", models.OperationUpdate, 42, 1000)
	require.NoError(t, store.PutOperation(ctx, op))

	// Обновляем статус и счетчик попыток
	op.Status = models.StatusFailed
	op.RetryCount = 2
	require.NoError(t, store.PutOperation(ctx, op))

	got, err := store.GetOperation(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, got.Status)
	assert.Equal(t, 2, got.RetryCount)

	// Запись обновлена, а не добавлена
	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	assert.Len(t, ops, 1)
}

func TestStorage_GetOperation_NotFound(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetOperation(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)
}

func TestStorage_ListOperations(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-1", models.OperationUpdate, 1, 1000)))
	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-2", models.OperationPhoto, 2, 2000)))
	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-3", models.OperationSignature, 3, 3000)))

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	assert.Len(t, ops, 3)

	ids := make(map[string]bool)
	for _, op := range ops {
		ids[op.ID] = true
	}
	assert.True(t, ids["op-1"])
	assert.True(t, ids["op-2"])
	assert.True(t, ids["op-3"])
}

func TestStorage_ListOperations_Empty(t *testing.T) {
	store := createTestStorage(t)

	ops, err := store.ListOperations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestStorage_DeleteOperation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-1", models.OperationUpdate, 1, 1000)))
	require.NoError(t, store.DeleteOperation(ctx, "op-1"))

	_, err := store.GetOperation(ctx, "op-1")
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)
}

func TestStorage_DeleteOperation_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Удаление отсутствующего id не является ошибкой
	require.NoError(t, store.DeleteOperation(ctx, "missing"))
	require.NoError(t, store.DeleteOperation(ctx, "missing"))
}

func TestStorage_ClearOperations(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-1", models.OperationUpdate, 1, 1000)))
	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-2", models.OperationPhoto, 2, 2000)))

	require.NoError(t, store.ClearOperations(ctx))

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	// Bucket пересоздан и принимает новые записи
	require.NoError(t, store.PutOperation(ctx, createTestOperation("op-3", models.OperationUpdate, 3, 3000)))
	ops, err = store.ListOperations(ctx)
	require.NoError(t, err)
	assert.Len(t, ops, 1)
}

func TestStorage_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	op := createTestOperation("op-1", models.OperationPhoto, 42, 1000)
	op.RetryCount = 1
	require.NoError(t, store.PutOperation(ctx, op))
	require.NoError(t, store.Close())

	// Очередь переживает перезапуск процесса
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetOperation(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, models.OperationPhoto, got.Type)
	assert.Equal(t, 1, got.RetryCount)
}
