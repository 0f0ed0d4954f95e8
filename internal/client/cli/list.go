package cli

import (
	"context"
	"fmt"

	"github.com/assetops/fieldsync/internal/models"
)

func (c *Cli) runList(ctx context.Context) error {
	var assets []*models.Asset

	if c.monitor.Online() {
		resp, err := c.apiClient.ListAssets(ctx)
		if err != nil {
			return fmt.Errorf("failed to list assets: %w", err)
		}

		assets = make([]*models.Asset, 0, len(resp.Assets))
		for i := range resp.Assets {
			assets = append(assets, assetFromResponse(&resp.Assets[i]))
		}

		if err := c.cache.SaveAssets(ctx, assets); err != nil {
			c.io.Printf("Warning: failed to cache assets: %v\n", err)
		}

		c.io.Printf("=== Assets (%d) ===\n", len(assets))
	} else {
		cached, err := c.cache.ListAssets(ctx)
		if err != nil {
			return fmt.Errorf("failed to list cached assets: %w", err)
		}
		assets = cached

		c.io.Printf("=== Assets (%d, cached copies) ===\n", len(assets))
	}

	if len(assets) == 0 {
		c.io.Println("No assets found.")
		return nil
	}

	c.io.Println()
	for _, asset := range assets {
		line := fmt.Sprintf("%-12s %-10s %s", asset.Tag, asset.Status, asset.Name)
		if asset.AssignedTo != "" {
			line += fmt.Sprintf(" (assigned to %s)", asset.AssignedTo)
		}
		c.io.Println(line)
	}

	return nil
}
