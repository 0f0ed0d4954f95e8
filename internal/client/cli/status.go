package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/assetops/fieldsync/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== FieldSync Status ===")
	c.io.Println()

	// Соединение
	if c.monitor.Online() {
		c.io.Println("Connection: online")
	} else {
		c.io.Println("Connection: offline (operations are queued locally)")
	}

	// Сессия
	session, err := c.auth.CurrentSession(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Session:    not authenticated, run 'fieldsync login'")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		c.io.Printf("Session:    %s (token expires %s)\n",
			session.Username,
			time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
	}

	// Очередь
	c.io.Println()
	pending := c.queue.Pending()
	if pending > 0 {
		c.io.Printf("Pending operations: %d\n", pending)
	} else {
		c.io.Println("Pending operations: none")
	}

	if c.engine.Syncing() {
		c.io.Println("Sync: in progress")
	}

	// В свежем процессе движок еще ничего не синхронизировал, поэтому
	// время последнего прохода берем из локального хранилища
	lastSync := c.engine.LastSyncAt()
	if lastSync.IsZero() {
		if ms, err := c.metadata.GetLastSyncTime(ctx); err == nil && ms > 0 {
			lastSync = time.UnixMilli(ms)
		}
	}
	if !lastSync.IsZero() {
		c.io.Printf("Last sync: %s\n", lastSync.Format(time.RFC3339))
	}

	if lastErr := c.engine.LastError(); lastErr != "" {
		c.io.Printf("Last sync error: %s\n", lastErr)
	}

	return nil
}
