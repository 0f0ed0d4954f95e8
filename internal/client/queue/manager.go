package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/models"
)

// Manager is the single source of truth for pending operations. All reads
// and writes of the queue store go through it; after every mutation the
// in-memory view is reloaded from the store so observers always see
// persisted state.
type Manager struct {
	store  storage.QueueStorage
	logger *slog.Logger

	mu  sync.RWMutex
	ops []*models.Operation

	// trigger state, bound once at startup
	online func() bool
	kick   func()
}

// NewManager creates a queue manager backed by the given store.
func NewManager(store storage.QueueStorage, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		online: func() bool { return false },
		kick:   func() {},
	}
}

// BindSyncTrigger wires the connectivity check and the scheduler kick used
// by Enqueue. Called once at startup, before any enqueue.
func (m *Manager) BindSyncTrigger(online func() bool, kick func()) {
	m.online = online
	m.kick = kick
}

// Enqueue persists a new pending operation and returns its id. If the
// client is currently online, a sync pass is triggered best-effort; the
// caller is not blocked on sync completion.
//
// A put failure means the operation is not safely queued; it propagates
// to the caller unchanged with an empty id. If only the post-write reload
// fails, the operation IS durably queued and its id is returned alongside
// the error so the caller does not enqueue a duplicate.
func (m *Manager) Enqueue(ctx context.Context, opType models.OperationType, subjectID int64, payload any) (string, error) {
	op, err := models.NewOperation(opType, subjectID, payload)
	if err != nil {
		return "", fmt.Errorf("failed to build operation: %w", err)
	}

	if err := m.store.PutOperation(ctx, op); err != nil {
		return "", fmt.Errorf("failed to persist operation: %w", err)
	}

	// Операция уже записана: возвращаем id вместе с ошибкой, чтобы
	// повторный enqueue не задублировал её
	if err := m.Reload(ctx); err != nil {
		return op.ID, fmt.Errorf("failed to reload queue: %w", err)
	}

	m.logger.Info("Operation enqueued",
		"operation_id", op.ID,
		"type", op.Type,
		"subject_id", op.SubjectID,
		"pending", m.Pending())

	// Если online - запускаем синхронизацию (fire-and-forget)
	if m.online() {
		m.kick()
	}

	return op.ID, nil
}

// Update persists a mutated operation (status, retry count) and reloads
// the view. Used by the sync engine during a pass.
func (m *Manager) Update(ctx context.Context, op *models.Operation) error {
	if err := m.store.PutOperation(ctx, op); err != nil {
		return fmt.Errorf("failed to persist operation: %w", err)
	}
	return m.Reload(ctx)
}

// Remove deletes an operation from the store and reloads the view.
// Removing a non-existent id is a no-op.
func (m *Manager) Remove(ctx context.Context, id string) error {
	if err := m.store.DeleteOperation(ctx, id); err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	return m.Reload(ctx)
}

// Clear empties the queue store entirely. Used for explicit
// user-initiated reset.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.ClearOperations(ctx); err != nil {
		return fmt.Errorf("failed to clear operations: %w", err)
	}
	return m.Reload(ctx)
}

// Reload reads every persisted operation, sorts ascending by EnqueuedAt
// and replaces the in-memory view. Called after every mutation and on
// startup.
func (m *Manager) Reload(ctx context.Context) error {
	ops, err := m.store.ListOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}

	// FIFO порядок: старые операции первыми, ties по id
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].EnqueuedAt != ops[j].EnqueuedAt {
			return ops[i].EnqueuedAt < ops[j].EnqueuedAt
		}
		return ops[i].ID < ops[j].ID
	})

	m.mu.Lock()
	m.ops = ops
	m.mu.Unlock()

	return nil
}

// Operations returns a copy of the current in-memory view, oldest first.
func (m *Manager) Operations() []*models.Operation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ops := make([]*models.Operation, len(m.ops))
	copy(ops, m.ops)
	return ops
}

// Pending returns the number of operations awaiting sync (status pending
// or syncing). This is the primary UI signal.
func (m *Manager) Pending() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, op := range m.ops {
		if op.Status == models.StatusPending || op.Status == models.StatusSyncing {
			count++
		}
	}
	return count
}
