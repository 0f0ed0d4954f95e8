package netwatch

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"
)

// Prober checks whether the remote server is reachable.
// Implemented by the API client's Health method.
type Prober interface {
	Ping(ctx context.Context) error
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context) error

// Ping calls f(ctx).
func (f ProberFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Monitor observes transitions between online and offline by polling the
// server health endpoint. Transitions are fanned out to subscribers; the
// current state is always available via Online().
//
// A loss of connectivity is confirmed with a couple of retried probes
// before the state flips, so a single dropped request does not bounce the
// client into offline mode.
type Monitor struct {
	prober       Prober
	interval     time.Duration
	confirmDelay time.Duration
	logger       *slog.Logger

	online atomic.Bool

	mu   sync.Mutex
	subs []chan bool
}

// confirmRetries is how many extra probes confirm an offline transition.
const confirmRetries = 2

// NewMonitor creates a connectivity monitor polling on the given interval.
// The initial state is offline until the first successful probe.
func NewMonitor(prober Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		prober:       prober,
		interval:     interval,
		confirmDelay: 2 * time.Second,
		logger:       logger,
	}
}

// Online reports the current connectivity state.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Subscribe returns a channel receiving the new state on every
// online/offline transition. The channel is buffered; a slow subscriber
// misses intermediate flips but always observes the latest state.
func (m *Monitor) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Probe performs one immediate connectivity check. One-shot commands use
// it to settle the online/offline state without starting the poll loop.
func (m *Monitor) Probe(ctx context.Context) {
	m.check(ctx)
}

// Run polls the prober until the context is cancelled. The first probe
// happens immediately so callers get an initial state without waiting a
// full interval.
func (m *Monitor) Run(ctx context.Context) {
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check performs one connectivity decision.
func (m *Monitor) check(ctx context.Context) {
	if err := m.prober.Ping(ctx); err == nil {
		m.setOnline(true)
		return
	}

	if !m.online.Load() {
		// Уже offline, подтверждение не требуется
		return
	}

	// Подтверждаем потерю соединения повторными попытками
	err := retry.Do(ctx, retry.WithMaxRetries(confirmRetries, retry.NewConstant(m.confirmDelay)), func(ctx context.Context) error {
		if err := m.prober.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})

	m.setOnline(err == nil)
}

// setOnline updates the state and notifies subscribers on change.
func (m *Monitor) setOnline(online bool) {
	if m.online.Swap(online) == online {
		return
	}

	if online {
		m.logger.Info("Connection restored")
	} else {
		m.logger.Warn("Connection lost, entering offline mode")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		// Не блокируемся на медленных подписчиках: вытесняем
		// устаревшее состояние из буфера
		select {
		case ch <- online:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- online:
			default:
			}
		}
	}
}
