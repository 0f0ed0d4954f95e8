package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (c *Cli) runQueue(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "clear" {
		return c.runQueueClear(ctx)
	}

	if err := c.queue.Reload(ctx); err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}

	ops := c.queue.Operations()
	if len(ops) == 0 {
		c.io.Println("Queue is empty.")
		return nil
	}

	c.io.Printf("=== Queued Operations (%d) ===\n", len(ops))
	c.io.Println()

	for _, op := range ops {
		enqueued := time.UnixMilli(op.EnqueuedAt).Format(time.RFC3339)
		line := fmt.Sprintf("%-24s %-10s asset=%d status=%s enqueued=%s",
			op.ID, op.Type, op.SubjectID, op.Status, enqueued)
		if op.RetryCount > 0 {
			line += fmt.Sprintf(" retries=%d", op.RetryCount)
		}
		c.io.Println(line)
	}

	return nil
}

// runQueueClear отбрасывает все отложенные операции. Изменения,
// сделанные офлайн, при этом теряются, поэтому просим подтверждение.
func (c *Cli) runQueueClear(ctx context.Context) error {
	pending := c.queue.Pending()
	if pending == 0 {
		c.io.Println("Queue is already empty.")
		return nil
	}

	c.io.Printf("This will drop %d queued operation(s). Unsynced changes will be lost.\n", pending)
	answer, err := c.io.ReadInput("Continue? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.queue.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}

	c.io.Println("✓ Queue cleared.")

	return nil
}
