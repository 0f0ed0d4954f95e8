package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/assetops/fieldsync/internal/client/storage"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing asset id. Usage: fieldsync get <id>")
	}

	id, err := parseAssetID(args[0])
	if err != nil {
		return err
	}

	if c.monitor.Online() {
		resp, err := c.apiClient.GetAsset(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get asset: %w", err)
		}

		asset := assetFromResponse(resp)
		c.cacheAsset(ctx, asset)

		c.io.Println("=== Asset Details ===")
		c.printAsset(asset)
		return nil
	}

	asset, err := c.cache.GetAsset(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAssetNotFound) {
			return fmt.Errorf("asset %d is not in the local cache and the server is unreachable", id)
		}
		return fmt.Errorf("cache lookup failed: %w", err)
	}

	c.io.Println("=== Asset Details (cached copy) ===")
	c.printAsset(asset)

	return nil
}
