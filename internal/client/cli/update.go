package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/assetops/fieldsync/internal/models"
)

// updatableFields - поля, которые техник может менять с планшета
var updatableFields = map[string]bool{
	"name":        true,
	"category":    true,
	"status":      true,
	"assigned_to": true,
	"location":    true,
	"notes":       true,
}

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fieldsync update <id> <field=value>...")
	}

	id, err := parseAssetID(args[0])
	if err != nil {
		return err
	}

	if err := c.ensureQueueable(); err != nil {
		return err
	}

	fields := make(map[string]any, len(args)-1)
	for _, arg := range args[1:] {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("invalid field %q, expected field=value", arg)
		}
		if !updatableFields[key] {
			return fmt.Errorf("unknown field %q", key)
		}
		fields[key] = value
	}

	opID, err := c.queue.Enqueue(ctx, models.OperationUpdate, id, &models.UpdatePayload{
		Fields: fields,
	})
	if err != nil {
		return fmt.Errorf("failed to queue update: %w", err)
	}

	c.io.Printf("✓ Update queued for asset %d (operation %s)\n", id, opID)
	if !c.monitor.Online() {
		c.io.Println("Offline: the update will be sent when the connection returns.")
	}

	c.syncAfterEnqueue(ctx)

	return nil
}
