package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/assetops/fieldsync/internal/models"
)

// maxPhotoSize ограничивает размер фотографии: payload хранится целиком
// в локальной очереди до момента отправки.
const maxPhotoSize = 10 << 20 // 10 MiB

func (c *Cli) runPhoto(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fieldsync photo <id> <file>")
	}

	id, err := parseAssetID(args[0])
	if err != nil {
		return err
	}

	if err := c.ensureQueueable(); err != nil {
		return err
	}

	path := args[1]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read photo file: %w", err)
	}
	if info.Size() > maxPhotoSize {
		return fmt.Errorf("photo is too large (%d bytes, limit %d)", info.Size(), maxPhotoSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read photo file: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opID, err := c.queue.Enqueue(ctx, models.OperationPhoto, id, &models.PhotoPayload{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return fmt.Errorf("failed to queue photo: %w", err)
	}

	c.io.Printf("✓ Photo queued for asset %d (operation %s, %d bytes)\n", id, opID, len(data))
	if !c.monitor.Online() {
		c.io.Println("Offline: the photo will be uploaded when the connection returns.")
	}

	c.syncAfterEnqueue(ctx)

	return nil
}
