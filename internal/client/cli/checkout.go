package cli

import (
	"context"
	"fmt"

	"github.com/assetops/fieldsync/internal/models"
	pkgapi "github.com/assetops/fieldsync/pkg/api"
)

// runCheckout выдает оборудование на дом: создает запись о выдаче на
// сервере (или ставит обновление статуса в очередь при офлайне) и
// опционально прикладывает подпись получателя.
func (c *Cli) runCheckout(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fieldsync checkout <id> <recipient> [signature.png]")
	}

	id, err := parseAssetID(args[0])
	if err != nil {
		return err
	}
	recipient := args[1]

	// Online: запись о выдаче создается сразу, сервер сам меняет статус
	if c.monitor.Online() {
		output, err := c.apiClient.CreateEquipmentOutput(ctx, pkgapi.EquipmentOutputRequest{
			AssetID:   id,
			Recipient: recipient,
			Action:    "checkout",
		})
		if err != nil {
			return fmt.Errorf("checkout failed: %w", err)
		}

		c.io.Printf("✓ Asset %d checked out to %s (output record %d)\n", id, recipient, output.ID)
	} else {
		// Offline: откладываем смену статуса до восстановления связи
		if err := c.ensureQueueable(); err != nil {
			return err
		}
		opID, err := c.queue.Enqueue(ctx, models.OperationUpdate, id, &models.UpdatePayload{
			Fields: map[string]any{
				"status":      models.AssetStatusHomeOffice,
				"assigned_to": recipient,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to queue checkout: %w", err)
		}

		c.io.Printf("✓ Checkout queued for asset %d (operation %s)\n", id, opID)
		c.io.Println("Offline: the checkout will be recorded when the connection returns.")
	}

	// Подпись получателя, если приложена
	if len(args) > 2 {
		opID, err := c.enqueueSignature(ctx, id, recipient, "checkout", args[2])
		if err != nil {
			return err
		}
		c.io.Printf("✓ Signature queued (operation %s)\n", opID)
	}

	c.syncAfterEnqueue(ctx)

	return nil
}

// runReturn принимает оборудование обратно на склад.
func (c *Cli) runReturn(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: fieldsync return <id> [signature.png]")
	}

	id, err := parseAssetID(args[0])
	if err != nil {
		return err
	}

	var recipient string

	if c.monitor.Online() {
		output, err := c.apiClient.CreateEquipmentOutput(ctx, pkgapi.EquipmentOutputRequest{
			AssetID: id,
			Action:  "return",
		})
		if err != nil {
			return fmt.Errorf("return failed: %w", err)
		}

		recipient = output.Recipient
		c.io.Printf("✓ Asset %d returned to stock (output record %d)\n", id, output.ID)
	} else {
		if err := c.ensureQueueable(); err != nil {
			return err
		}
		opID, err := c.queue.Enqueue(ctx, models.OperationUpdate, id, &models.UpdatePayload{
			Fields: map[string]any{
				"status":      models.AssetStatusInStock,
				"assigned_to": "",
			},
		})
		if err != nil {
			return fmt.Errorf("failed to queue return: %w", err)
		}

		c.io.Printf("✓ Return queued for asset %d (operation %s)\n", id, opID)
		c.io.Println("Offline: the return will be recorded when the connection returns.")
	}

	if len(args) > 1 {
		if recipient == "" {
			recipient = "technician"
		}
		opID, err := c.enqueueSignature(ctx, id, recipient, "return", args[1])
		if err != nil {
			return err
		}
		c.io.Printf("✓ Signature queued (operation %s)\n", opID)
	}

	c.syncAfterEnqueue(ctx)

	return nil
}
