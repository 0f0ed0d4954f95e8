package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpClient "github.com/assetops/fieldsync/internal/client/api"
	"github.com/assetops/fieldsync/internal/client/auth"
	"github.com/assetops/fieldsync/internal/client/cache"
	"github.com/assetops/fieldsync/internal/client/iocli"
	"github.com/assetops/fieldsync/internal/client/queue"
	"github.com/assetops/fieldsync/internal/client/storage"
	clientsync "github.com/assetops/fieldsync/internal/client/sync"
	"github.com/assetops/fieldsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capturedIO collects everything the commands print.
type capturedIO struct {
	mu  sync.Mutex
	out strings.Builder

	input string
}

func (c *capturedIO) mock() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			c.mu.Lock()
			defer c.mu.Unlock()
			fmt.Fprintf(&c.out, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return c.input, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return c.input, nil
		},
	}
}

func (c *capturedIO) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.String()
}

// inMemoryQueueStore backs QueueStorageMock with a map.
func inMemoryQueueStore() *storage.QueueStorageMock {
	var mu sync.Mutex
	ops := make(map[string]*models.Operation)

	return &storage.QueueStorageMock{
		PutOperationFunc: func(ctx context.Context, op *models.Operation) error {
			mu.Lock()
			defer mu.Unlock()
			cp := *op
			ops[op.ID] = &cp
			return nil
		},
		GetOperationFunc: func(ctx context.Context, id string) (*models.Operation, error) {
			mu.Lock()
			defer mu.Unlock()
			op, ok := ops[id]
			if !ok {
				return nil, storage.ErrOperationNotFound
			}
			cp := *op
			return &cp, nil
		},
		ListOperationsFunc: func(ctx context.Context) ([]*models.Operation, error) {
			mu.Lock()
			defer mu.Unlock()
			list := make([]*models.Operation, 0, len(ops))
			for _, op := range ops {
				cp := *op
				list = append(list, &cp)
			}
			return list, nil
		},
		DeleteOperationFunc: func(ctx context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(ops, id)
			return nil
		},
		ClearOperationsFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			ops = make(map[string]*models.Operation)
			return nil
		},
	}
}

// fakeMonitor is a static connectivity source for command tests.
type fakeMonitor struct {
	online bool
}

func (m *fakeMonitor) Online() bool { return m.online }

func (m *fakeMonitor) Run(ctx context.Context) { <-ctx.Done() }

// testCli wires a Cli over in-memory storage and the given API mock.
func testCli(t *testing.T, client *httpClient.ClientAPIMock, online bool) (*Cli, *capturedIO) {
	t.Helper()

	logger := testLogger()

	assetCache, err := cache.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { assetCache.Close() })

	queueManager := queue.NewManager(inMemoryQueueStore(), logger)

	monitor := &fakeMonitor{online: online}

	metadata := &storage.MetadataStorageMock{
		SaveLastSyncTimeFunc: func(ctx context.Context, ts int64) error { return nil },
		GetLastSyncTimeFunc:  func(ctx context.Context) (int64, error) { return 0, nil },
	}

	executor := clientsync.NewAPIExecutor(client)
	engine := clientsync.NewService(queueManager, executor, monitor, metadata, 3, logger)
	scheduler := clientsync.NewScheduler(engine, queueManager, &staticConnectivity{monitor}, time.Hour, logger)

	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*storage.SessionData, error) {
			return nil, storage.ErrSessionNotFound
		},
		SaveSessionFunc: func(ctx context.Context, session *storage.SessionData) error {
			return nil
		},
		DeleteSessionFunc: func(ctx context.Context) error { return nil },
	}
	authService := auth.NewService(client, sessions, logger)

	ioCap := &capturedIO{}

	c := New(ioCap.mock(), client, authService, assetCache, queueManager, engine, scheduler, monitor, metadata, true)

	return c, ioCap
}

// staticConnectivity adapts fakeMonitor to the scheduler's subscription
// interface.
type staticConnectivity struct {
	m *fakeMonitor
}

func (s *staticConnectivity) Online() bool           { return s.m.Online() }
func (s *staticConnectivity) Subscribe() <-chan bool { return make(chan bool) }
