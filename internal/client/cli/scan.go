package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/validation"
)

func (c *Cli) runScan(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing asset tag. Usage: fieldsync scan <tag>")
	}

	tag := args[0]
	if err := validation.ValidateTag(tag); err != nil {
		return err
	}

	// Online: свежая копия с сервера, попутно обновляем кеш
	if c.monitor.Online() {
		resp, err := c.apiClient.FindAssetByTag(ctx, tag)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}

		asset := assetFromResponse(resp)
		c.cacheAsset(ctx, asset)

		c.io.Printf("=== %s ===\n", asset.Tag)
		c.printAsset(asset)
		return nil
	}

	// Offline: отвечаем из локального кеша
	asset, err := c.cache.GetAssetByTag(ctx, tag)
	if err != nil {
		if errors.Is(err, storage.ErrAssetNotFound) {
			return fmt.Errorf("asset %s is not in the local cache and the server is unreachable", tag)
		}
		return fmt.Errorf("cache lookup failed: %w", err)
	}

	c.io.Printf("=== %s (cached copy) ===\n", asset.Tag)
	c.printAsset(asset)

	return nil
}
