package sync

import (
	"context"
	"log/slog"
	"time"
)

// passRunner is the slice of the engine the scheduler drives.
type passRunner interface {
	RunSyncPass(ctx context.Context) *Result
}

// pendingSource reports how many operations await sync.
type pendingSource interface {
	Pending() int
}

// connectivity is the slice of the monitor the scheduler observes.
type connectivity interface {
	Online() bool
	Subscribe() <-chan bool
}

// Scheduler decides when sync passes fire: on reconnect, on a fixed
// interval, and on explicit kicks from enqueue or the sync command.
// Overlapping triggers collapse into a single pass via the engine's
// in-progress guard.
type Scheduler struct {
	engine   passRunner
	queue    pendingSource
	monitor  connectivity
	interval time.Duration
	logger   *slog.Logger

	kick chan struct{}
}

// NewScheduler creates a trigger layer around the sync engine.
func NewScheduler(engine passRunner, queue pendingSource, monitor connectivity, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		engine:   engine,
		queue:    queue,
		monitor:  monitor,
		interval: interval,
		logger:   logger,
		kick:     make(chan struct{}, 1),
	}
}

// Kick requests a sync pass without blocking the caller. Redundant kicks
// while one is already queued are discarded.
func (s *Scheduler) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Run dispatches sync passes until the context is cancelled. Intended to
// run as a goroutine in watch mode.
func (s *Scheduler) Run(ctx context.Context) {
	sub := s.monitor.Subscribe()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case online := <-sub:
			// Переход offline->online: досылаем накопленную очередь
			if online && s.queue.Pending() > 0 {
				s.logger.Info("Reconnected, syncing queued operations",
					"pending", s.queue.Pending())
				s.engine.RunSyncPass(ctx)
			}

		case <-ticker.C:
			// Периодическая страховка на случай пропущенных событий
			if s.monitor.Online() && s.queue.Pending() > 0 {
				s.engine.RunSyncPass(ctx)
			}

		case <-s.kick:
			if s.monitor.Online() {
				s.engine.RunSyncPass(ctx)
			}
		}
	}
}
