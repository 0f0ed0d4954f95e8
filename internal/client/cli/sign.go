package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/assetops/fieldsync/internal/models"
)

// signatureActions - действия, под которыми ставится подпись
var signatureActions = map[string]bool{
	"checkout": true,
	"return":   true,
}

func (c *Cli) runSign(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: fieldsync sign <id> <signer> <action> <file>")
	}

	id, err := parseAssetID(args[0])
	if err != nil {
		return err
	}

	signer := args[1]
	action := args[2]
	if !signatureActions[action] {
		return fmt.Errorf("invalid action %q, expected checkout or return", action)
	}

	if err := c.ensureQueueable(); err != nil {
		return err
	}

	opID, err := c.enqueueSignature(ctx, id, signer, action, args[3])
	if err != nil {
		return err
	}

	c.io.Printf("✓ Signature queued for asset %d (operation %s)\n", id, opID)
	if !c.monitor.Online() {
		c.io.Println("Offline: the signature will be uploaded when the connection returns.")
	}

	c.syncAfterEnqueue(ctx)

	return nil
}

// enqueueSignature reads the signature image and queues the upload.
// Shared with checkout/return which attach a signature to the handover.
func (c *Cli) enqueueSignature(ctx context.Context, assetID int64, signer, action, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read signature file: %w", err)
	}

	opID, err := c.queue.Enqueue(ctx, models.OperationSignature, assetID, &models.SignaturePayload{
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		Signer:      signer,
		Action:      action,
		SignedAt:    time.Now().UnixMilli(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to queue signature: %w", err)
	}

	return opID, nil
}
