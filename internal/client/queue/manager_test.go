package queue

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// inMemoryStore returns a QueueStorageMock backed by a map, the way a real
// store behaves.
func inMemoryStore() (*storage.QueueStorageMock, map[string]*models.Operation) {
	ops := make(map[string]*models.Operation)

	mock := &storage.QueueStorageMock{
		PutOperationFunc: func(ctx context.Context, op *models.Operation) error {
			saved := *op
			ops[op.ID] = &saved
			return nil
		},
		GetOperationFunc: func(ctx context.Context, id string) (*models.Operation, error) {
			if op, ok := ops[id]; ok {
				return op, nil
			}
			return nil, storage.ErrOperationNotFound
		},
		ListOperationsFunc: func(ctx context.Context) ([]*models.Operation, error) {
			result := make([]*models.Operation, 0, len(ops))
			for _, op := range ops {
				copied := *op
				result = append(result, &copied)
			}
			return result, nil
		},
		DeleteOperationFunc: func(ctx context.Context, id string) error {
			delete(ops, id)
			return nil
		},
		ClearOperationsFunc: func(ctx context.Context) error {
			for id := range ops {
				delete(ops, id)
			}
			return nil
		},
	}

	return mock, ops
}

func TestManager_Enqueue(t *testing.T) {
	store, ops := inMemoryStore()
	mgr := NewManager(store, testLogger())

	id, err := mgr.Enqueue(context.Background(), models.OperationUpdate, 42, &models.UpdatePayload{
		Fields: map[string]any{"status": "repair"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Операция персистентна и видна в in-memory представлении
	assert.Contains(t, ops, id)
	assert.Equal(t, 1, mgr.Pending())

	queued := mgr.Operations()
	require.Len(t, queued, 1)
	assert.Equal(t, id, queued[0].ID)
	assert.Equal(t, models.StatusPending, queued[0].Status)
	assert.Equal(t, 0, queued[0].RetryCount)
}

func TestManager_Enqueue_TriggersSyncWhenOnline(t *testing.T) {
	store, _ := inMemoryStore()
	mgr := NewManager(store, testLogger())

	kicked := 0
	mgr.BindSyncTrigger(func() bool { return true }, func() { kicked++ })

	_, err := mgr.Enqueue(context.Background(), models.OperationUpdate, 1, &models.UpdatePayload{})
	require.NoError(t, err)
	assert.Equal(t, 1, kicked)
}

func TestManager_Enqueue_NoTriggerWhenOffline(t *testing.T) {
	store, _ := inMemoryStore()
	mgr := NewManager(store, testLogger())

	kicked := 0
	mgr.BindSyncTrigger(func() bool { return false }, func() { kicked++ })

	_, err := mgr.Enqueue(context.Background(), models.OperationUpdate, 1, &models.UpdatePayload{})
	require.NoError(t, err)
	assert.Equal(t, 0, kicked)
}

func TestManager_Enqueue_StoreFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	store := &storage.QueueStorageMock{
		PutOperationFunc: func(ctx context.Context, op *models.Operation) error {
			return storeErr
		},
	}
	mgr := NewManager(store, testLogger())

	_, err := mgr.Enqueue(context.Background(), models.OperationUpdate, 1, &models.UpdatePayload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	// Операция не считается поставленной в очередь
	assert.Equal(t, 0, mgr.Pending())
}

func TestManager_Enqueue_ReloadFailureReturnsID(t *testing.T) {
	listErr := errors.New("bucket read failed")
	store := &storage.QueueStorageMock{
		PutOperationFunc: func(ctx context.Context, op *models.Operation) error {
			return nil
		},
		ListOperationsFunc: func(ctx context.Context) ([]*models.Operation, error) {
			return nil, listErr
		},
	}
	mgr := NewManager(store, testLogger())

	// Запись прошла, перечитывание нет: id обязан вернуться вместе с
	// ошибкой, иначе повторный enqueue задублирует операцию
	id, err := mgr.Enqueue(context.Background(), models.OperationUpdate, 1, &models.UpdatePayload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, listErr)
	assert.NotEmpty(t, id)
}

func TestManager_Remove(t *testing.T) {
	store, _ := inMemoryStore()
	mgr := NewManager(store, testLogger())
	ctx := context.Background()

	id, err := mgr.Enqueue(ctx, models.OperationPhoto, 7, &models.PhotoPayload{FileName: "a.jpg"})
	require.NoError(t, err)

	require.NoError(t, mgr.Remove(ctx, id))
	assert.Equal(t, 0, mgr.Pending())
}

func TestManager_Remove_Idempotent(t *testing.T) {
	store, _ := inMemoryStore()
	mgr := NewManager(store, testLogger())
	ctx := context.Background()

	require.NoError(t, mgr.Remove(ctx, "does-not-exist"))
	require.NoError(t, mgr.Remove(ctx, "does-not-exist"))
}

func TestManager_Reload_SortsFIFO(t *testing.T) {
	store, ops := inMemoryStore()
	mgr := NewManager(store, testLogger())
	ctx := context.Background()

	// Заполняем store напрямую в обратном порядке
	ops["op-c"] = &models.Operation{ID: "op-c", Type: models.OperationUpdate, EnqueuedAt: 3000, Status: models.StatusPending}
	ops["op-a"] = &models.Operation{ID: "op-a", Type: models.OperationUpdate, EnqueuedAt: 1000, Status: models.StatusPending}
	ops["op-b"] = &models.Operation{ID: "op-b", Type: models.OperationUpdate, EnqueuedAt: 2000, Status: models.StatusPending}

	require.NoError(t, mgr.Reload(ctx))

	queued := mgr.Operations()
	require.Len(t, queued, 3)
	assert.Equal(t, "op-a", queued[0].ID)
	assert.Equal(t, "op-b", queued[1].ID)
	assert.Equal(t, "op-c", queued[2].ID)
}

func TestManager_Reload_TieBreakByID(t *testing.T) {
	store, ops := inMemoryStore()
	mgr := NewManager(store, testLogger())

	ops["op-2"] = &models.Operation{ID: "op-2", EnqueuedAt: 1000, Status: models.StatusPending}
	ops["op-1"] = &models.Operation{ID: "op-1", EnqueuedAt: 1000, Status: models.StatusPending}

	require.NoError(t, mgr.Reload(context.Background()))

	queued := mgr.Operations()
	require.Len(t, queued, 2)
	assert.Equal(t, "op-1", queued[0].ID)
	assert.Equal(t, "op-2", queued[1].ID)
}

func TestManager_Clear(t *testing.T) {
	store, _ := inMemoryStore()
	mgr := NewManager(store, testLogger())
	ctx := context.Background()

	_, err := mgr.Enqueue(ctx, models.OperationUpdate, 1, &models.UpdatePayload{})
	require.NoError(t, err)
	_, err = mgr.Enqueue(ctx, models.OperationPhoto, 2, &models.PhotoPayload{})
	require.NoError(t, err)

	require.NoError(t, mgr.Clear(ctx))
	assert.Equal(t, 0, mgr.Pending())
	assert.Empty(t, mgr.Operations())
}

func TestManager_Pending_ExcludesFailed(t *testing.T) {
	store, ops := inMemoryStore()
	mgr := NewManager(store, testLogger())

	ops["op-1"] = &models.Operation{ID: "op-1", EnqueuedAt: 1000, Status: models.StatusPending}
	ops["op-2"] = &models.Operation{ID: "op-2", EnqueuedAt: 2000, Status: models.StatusSyncing}
	ops["op-3"] = &models.Operation{ID: "op-3", EnqueuedAt: 3000, Status: models.StatusFailed}

	require.NoError(t, mgr.Reload(context.Background()))

	// pending + syncing считаются ожидающими
	assert.Equal(t, 2, mgr.Pending())
}
