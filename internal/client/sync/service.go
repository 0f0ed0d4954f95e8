package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/assetops/fieldsync/internal/client/queue"
	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/models"
)

// OnlineChecker reports the current connectivity state.
// Implemented by the netwatch monitor.
type OnlineChecker interface {
	Online() bool
}

// Result contains the aggregate outcome of one sync pass.
type Result struct {
	Attempted int // операций обработано в этом проходе
	Succeeded int // выполнено на сервере и удалено из очереди
	Requeued  int // неудачных, оставлено для следующего прохода
	Dropped   int // отброшено после исчерпания retry budget
}

// Service drains pending operations against the remote executor. At most
// one sync pass runs at a time; a pass never fails as a whole - individual
// operation failures are contained per iteration.
type Service struct {
	queue      *queue.Manager
	executor   Executor
	online     OnlineChecker
	metadata   storage.MetadataStorage
	maxRetries int
	logger     *slog.Logger

	running atomic.Bool

	mu         sync.Mutex
	lastError  string
	lastSyncAt time.Time
}

// NewService creates a sync engine. maxRetries is the per-operation retry
// budget; an operation failing that many times is dropped.
func NewService(q *queue.Manager, executor Executor, online OnlineChecker, metadata storage.MetadataStorage, maxRetries int, logger *slog.Logger) *Service {
	return &Service{
		queue:      q,
		executor:   executor,
		online:     online,
		metadata:   metadata,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// RunSyncPass drains the currently-pending operations sequentially in
// enqueue order. It returns immediately with an empty result when offline
// or when another pass is already running. The returned result is never
// nil and the method never returns an error: operation failures feed the
// retry/drop policy instead.
func (s *Service) RunSyncPass(ctx context.Context) *Result {
	result := &Result{}

	// Офлайн - выходим не трогая очередь
	if !s.online.Online() {
		return result
	}

	// Взаимное исключение: только один проход одновременно
	if !s.running.CompareAndSwap(false, true) {
		return result
	}
	defer s.running.Store(false)

	if err := s.queue.Reload(ctx); err != nil {
		s.logger.Error("Failed to reload queue before sync pass", "error", err)
		s.setLastError(err.Error())
		return result
	}

	// Отбираем pending операции; Operations() уже отсортирован по
	// EnqueuedAt, порядок ввода пользователя сохраняется
	var selected []*models.Operation
	for _, op := range s.queue.Operations() {
		if op.Status == models.StatusPending {
			selected = append(selected, op)
		}
	}

	if len(selected) == 0 {
		return result
	}

	s.logger.Info("Starting sync pass", "pending", len(selected))

	var lastErr string
	for _, op := range selected {
		result.Attempted++

		// Помечаем операцию как выполняющуюся
		op.Status = models.StatusSyncing
		if err := s.queue.Update(ctx, op); err != nil {
			s.logger.Warn("Failed to persist syncing status",
				"operation_id", op.ID,
				"error", err)
		}

		execErr := s.executor.Execute(ctx, op)
		if execErr == nil {
			// Успех: идемпотентное удаление из очереди
			if err := s.queue.Remove(ctx, op.ID); err != nil {
				s.logger.Warn("Failed to remove completed operation",
					"operation_id", op.ID,
					"error", err)
			}
			result.Succeeded++
			continue
		}

		lastErr = execErr.Error()

		if errors.Is(execErr, ErrPermanent) {
			// Повторы бессмысленны - отбрасываем сразу
			s.logger.Error("Dropping operation with permanent failure",
				"operation_id", op.ID,
				"type", op.Type,
				"error", execErr)
			s.removeDropped(ctx, op)
			result.Dropped++
			continue
		}

		op.RetryCount++
		if op.RetryCount >= s.maxRetries {
			// Retry budget исчерпан
			s.logger.Error("Dropping operation after exhausting retries",
				"operation_id", op.ID,
				"type", op.Type,
				"retries", op.RetryCount,
				"error", execErr)
			s.removeDropped(ctx, op)
			result.Dropped++
			continue
		}

		// Возвращаем в pending для следующего прохода, EnqueuedAt
		// сохраняется - операция будет повторена раньше новых
		s.logger.Warn("Operation failed, will retry",
			"operation_id", op.ID,
			"type", op.Type,
			"retry_count", op.RetryCount,
			"error", execErr)
		op.Status = models.StatusPending
		if err := s.queue.Update(ctx, op); err != nil {
			s.logger.Warn("Failed to requeue operation",
				"operation_id", op.ID,
				"error", err)
		}
		result.Requeued++
	}

	// Финальная перезагрузка, чтобы наблюдатели видели актуальный
	// pending count
	if err := s.queue.Reload(ctx); err != nil {
		s.logger.Warn("Failed to reload queue after sync pass", "error", err)
	}

	now := time.Now()
	if err := s.metadata.SaveLastSyncTime(ctx, now.UnixMilli()); err != nil {
		s.logger.Warn("Failed to save last sync time", "error", err)
	}

	s.mu.Lock()
	s.lastError = lastErr
	s.lastSyncAt = now
	s.mu.Unlock()

	s.logger.Info("Sync pass completed",
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"requeued", result.Requeued,
		"dropped", result.Dropped)

	return result
}

// Syncing reports whether a sync pass is currently running.
func (s *Service) Syncing() bool {
	return s.running.Load()
}

// LastError returns the error summary of the most recent pass, empty if
// the pass was clean.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// LastSyncAt returns when the most recent pass completed, zero if no pass
// has completed yet.
func (s *Service) LastSyncAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSyncAt
}

func (s *Service) removeDropped(ctx context.Context, op *models.Operation) {
	if err := s.queue.Remove(ctx, op.ID); err != nil {
		s.logger.Warn("Failed to remove dropped operation",
			"operation_id", op.ID,
			"error", err)
	}
}

func (s *Service) setLastError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}
