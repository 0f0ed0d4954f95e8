package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/assetops/fieldsync/internal/models"
	pkgapi "github.com/assetops/fieldsync/pkg/api"
)

// assetFromResponse converts the wire representation to the local model.
func assetFromResponse(resp *pkgapi.AssetResponse) *models.Asset {
	return &models.Asset{
		ID:           resp.ID,
		Tag:          resp.Tag,
		Name:         resp.Name,
		Category:     resp.Category,
		SerialNumber: resp.SerialNumber,
		Status:       resp.Status,
		AssignedTo:   resp.AssignedTo,
		Location:     resp.Location,
		Notes:        resp.Notes,
		UpdatedAt:    resp.UpdatedAt,
	}
}

func (c *Cli) printAsset(asset *models.Asset) {
	c.io.Printf("ID:       %d\n", asset.ID)
	c.io.Printf("Tag:      %s\n", asset.Tag)
	c.io.Printf("Name:     %s\n", asset.Name)
	c.io.Printf("Category: %s\n", asset.Category)
	if asset.SerialNumber != "" {
		c.io.Printf("Serial:   %s\n", asset.SerialNumber)
	}
	c.io.Printf("Status:   %s\n", asset.Status)
	if asset.AssignedTo != "" {
		c.io.Printf("Assigned: %s\n", asset.AssignedTo)
	}
	if asset.Location != "" {
		c.io.Printf("Location: %s\n", asset.Location)
	}
	if asset.Notes != "" {
		c.io.Printf("Notes:    %s\n", asset.Notes)
	}
}

// parseAssetID parses a numeric asset id argument.
func parseAssetID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid asset id %q, expected a positive number", arg)
	}
	return id, nil
}

// cacheAsset saves the server copy for offline reads. Cache failures are
// reported to the user but do not fail the command: the server answer was
// already shown.
func (c *Cli) cacheAsset(ctx context.Context, asset *models.Asset) {
	if err := c.cache.SaveAsset(ctx, asset); err != nil {
		c.io.Printf("Warning: failed to cache asset: %v\n", err)
	}
}
