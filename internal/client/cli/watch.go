package cli

import (
	"context"
	"sync"
)

// runWatch держит клиент в фоне: монитор следит за соединением,
// планировщик запускает проходы синхронизации. Завершается по
// отмене контекста (Ctrl+C в main).
func (c *Cli) runWatch(ctx context.Context) error {
	if err := c.queue.Reload(ctx); err != nil {
		return err
	}

	c.io.Println("Watching for connectivity and queued operations. Press Ctrl+C to stop.")
	c.io.Printf("Pending operations: %d\n", c.queue.Pending())

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		c.monitor.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		c.scheduler.Run(ctx)
	}()

	wg.Wait()

	c.io.Println("Stopped.")

	return nil
}
