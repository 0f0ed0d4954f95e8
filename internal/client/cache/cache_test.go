package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	t.Helper()

	c, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, c.Close())
	})

	return c
}

func testAsset(id int64, tag string) *models.Asset {
	return &models.Asset{
		ID:           id,
		Tag:          tag,
		Name:         "ThinkPad T14",
		Category:     "laptop",
		SerialNumber: "SN-0042",
		Status:       models.AssetStatusInStock,
		AssignedTo:   "",
		Location:     "warehouse-1",
		Notes:        "",
		UpdatedAt:    time.Unix(1700000000, 0),
	}
}

func TestCache_SaveAndGetAsset(t *testing.T) {
	ctx := context.Background()
	c := setupTestCache(t)

	asset := testAsset(1, "IT-00001")
	require.NoError(t, c.SaveAsset(ctx, asset))

	got, err := c.GetAsset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, asset.Tag, got.Tag)
	assert.Equal(t, asset.Name, got.Name)
	assert.Equal(t, asset.Status, got.Status)
	assert.Equal(t, asset.UpdatedAt.Unix(), got.UpdatedAt.Unix())
}

func TestCache_SaveAsset_Upsert(t *testing.T) {
	ctx := context.Background()
	c := setupTestCache(t)

	asset := testAsset(1, "IT-00001")
	require.NoError(t, c.SaveAsset(ctx, asset))

	// Повторное сохранение обновляет, а не дублирует
	asset.Status = models.AssetStatusRepair
	asset.Notes = "screen flicker"
	require.NoError(t, c.SaveAsset(ctx, asset))

	got, err := c.GetAsset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.AssetStatusRepair, got.Status)
	assert.Equal(t, "screen flicker", got.Notes)

	assets, err := c.ListAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 1)
}

func TestCache_GetAsset_NotFound(t *testing.T) {
	ctx := context.Background()
	c := setupTestCache(t)

	_, err := c.GetAsset(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrAssetNotFound)
}

func TestCache_GetAssetByTag(t *testing.T) {
	ctx := context.Background()
	c := setupTestCache(t)

	require.NoError(t, c.SaveAsset(ctx, testAsset(1, "IT-00001")))
	require.NoError(t, c.SaveAsset(ctx, testAsset(2, "IT-00002")))

	got, err := c.GetAssetByTag(ctx, "IT-00002")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)

	_, err = c.GetAssetByTag(ctx, "IT-99999")
	assert.ErrorIs(t, err, storage.ErrAssetNotFound)
}

func TestCache_SaveAssets_Batch(t *testing.T) {
	ctx := context.Background()
	c := setupTestCache(t)

	assets := []*models.Asset{
		testAsset(3, "IT-00003"),
		testAsset(1, "IT-00001"),
		testAsset(2, "IT-00002"),
	}
	require.NoError(t, c.SaveAssets(ctx, assets))

	got, err := c.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Список отсортирован по метке
	assert.Equal(t, "IT-00001", got[0].Tag)
	assert.Equal(t, "IT-00002", got[1].Tag)
	assert.Equal(t, "IT-00003", got[2].Tag)
}

func TestCache_ListAssets_Empty(t *testing.T) {
	ctx := context.Background()
	c := setupTestCache(t)

	assets, err := c.ListAssets(ctx)
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestCache_DeleteAsset(t *testing.T) {
	ctx := context.Background()
	c := setupTestCache(t)

	require.NoError(t, c.SaveAsset(ctx, testAsset(1, "IT-00001")))
	require.NoError(t, c.DeleteAsset(ctx, 1))

	_, err := c.GetAsset(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrAssetNotFound)

	// Повторное удаление не ошибка
	require.NoError(t, c.DeleteAsset(ctx, 1))
}

func TestCache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := t.TempDir() + "/cache.db"

	c, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, c.SaveAsset(ctx, testAsset(1, "IT-00001")))
	require.NoError(t, c.Close())

	// Данные переживают переоткрытие БД
	c2, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer c2.Close()

	got, err := c2.GetAsset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "IT-00001", got.Tag)
}
