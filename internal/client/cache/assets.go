package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/models"
)

// SaveAsset создает или обновляет запись актива в кеше.
// Вызывается после каждого успешного чтения с сервера.
func (c *Cache) SaveAsset(ctx context.Context, asset *models.Asset) error {
	query := `
		INSERT INTO assets (
			id, tag, name, category, serial_number,
			status, assigned_to, location, notes,
			updated_at, cached_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tag = excluded.tag,
			name = excluded.name,
			category = excluded.category,
			serial_number = excluded.serial_number,
			status = excluded.status,
			assigned_to = excluded.assigned_to,
			location = excluded.location,
			notes = excluded.notes,
			updated_at = excluded.updated_at,
			cached_at = excluded.cached_at
	`

	_, err := c.db.ExecContext(ctx, query,
		asset.ID,
		asset.Tag,
		asset.Name,
		asset.Category,
		asset.SerialNumber,
		asset.Status,
		asset.AssignedTo,
		asset.Location,
		asset.Notes,
		asset.UpdatedAt.Unix(),
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}

	return nil
}

// SaveAssets сохраняет пачку активов в одной транзакции.
// Используется после list-запроса к серверу.
func (c *Cache) SaveAssets(ctx context.Context, assets []*models.Asset) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit безвреден

	query := `
		INSERT INTO assets (
			id, tag, name, category, serial_number,
			status, assigned_to, location, notes,
			updated_at, cached_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tag = excluded.tag,
			name = excluded.name,
			category = excluded.category,
			serial_number = excluded.serial_number,
			status = excluded.status,
			assigned_to = excluded.assigned_to,
			location = excluded.location,
			notes = excluded.notes,
			updated_at = excluded.updated_at,
			cached_at = excluded.cached_at
	`

	now := time.Now().Unix()
	for _, asset := range assets {
		_, err := tx.ExecContext(ctx, query,
			asset.ID,
			asset.Tag,
			asset.Name,
			asset.Category,
			asset.SerialNumber,
			asset.Status,
			asset.AssignedTo,
			asset.Location,
			asset.Notes,
			asset.UpdatedAt.Unix(),
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to save asset %d: %w", asset.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAsset возвращает актив по ID.
// Returns storage.ErrAssetNotFound if the asset was never cached.
func (c *Cache) GetAsset(ctx context.Context, id int64) (*models.Asset, error) {
	query := `
		SELECT id, tag, name, category, serial_number,
		       status, assigned_to, location, notes, updated_at
		FROM assets
		WHERE id = ?
	`

	return c.scanAsset(c.db.QueryRowContext(ctx, query, id))
}

// GetAssetByTag возвращает актив по инвентарной метке.
// Returns storage.ErrAssetNotFound if the asset was never cached.
func (c *Cache) GetAssetByTag(ctx context.Context, tag string) (*models.Asset, error) {
	query := `
		SELECT id, tag, name, category, serial_number,
		       status, assigned_to, location, notes, updated_at
		FROM assets
		WHERE tag = ?
	`

	return c.scanAsset(c.db.QueryRowContext(ctx, query, tag))
}

// ListAssets возвращает все закешированные активы, отсортированные по метке.
// Returns empty slice if the cache is empty.
func (c *Cache) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	query := `
		SELECT id, tag, name, category, serial_number,
		       status, assigned_to, location, notes, updated_at
		FROM assets
		ORDER BY tag ASC
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var assets []*models.Asset

	for rows.Next() {
		asset := &models.Asset{}
		var updatedAt int64

		err := rows.Scan(
			&asset.ID,
			&asset.Tag,
			&asset.Name,
			&asset.Category,
			&asset.SerialNumber,
			&asset.Status,
			&asset.AssignedTo,
			&asset.Location,
			&asset.Notes,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}

		asset.UpdatedAt = time.Unix(updatedAt, 0)
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assets, nil
}

// DeleteAsset удаляет актив из кеша. Идемпотентна.
func (c *Cache) DeleteAsset(ctx context.Context, id int64) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

func (c *Cache) scanAsset(row *sql.Row) (*models.Asset, error) {
	asset := &models.Asset{}
	var updatedAt int64

	err := row.Scan(
		&asset.ID,
		&asset.Tag,
		&asset.Name,
		&asset.Category,
		&asset.SerialNumber,
		&asset.Status,
		&asset.AssignedTo,
		&asset.Location,
		&asset.Notes,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	asset.UpdatedAt = time.Unix(updatedAt, 0)

	return asset, nil
}
