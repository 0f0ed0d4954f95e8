package cli

import "context"

func (c *Cli) runSync(ctx context.Context) error {
	if !c.monitor.Online() {
		c.io.Println("Offline: sync skipped. Queued operations are kept locally.")
		c.io.Printf("Pending operations: %d\n", c.queue.Pending())
		return nil
	}

	c.io.Println("Starting sync pass...")

	result := c.engine.RunSyncPass(ctx)

	if result.Attempted == 0 {
		c.io.Println("Nothing to sync.")
		return nil
	}

	c.io.Println()
	c.io.Println("✓ Sync pass completed")
	c.io.Printf("Attempted: %d\n", result.Attempted)
	c.io.Printf("Succeeded: %d\n", result.Succeeded)
	if result.Requeued > 0 {
		c.io.Printf("Requeued:  %d (will retry on the next pass)\n", result.Requeued)
	}
	if result.Dropped > 0 {
		c.io.Printf("Dropped:   %d (retry budget exhausted)\n", result.Dropped)
	}

	return nil
}
