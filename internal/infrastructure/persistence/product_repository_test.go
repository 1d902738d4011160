package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Product{}, &catalog.Collection{}, &cart.Cart{}, &cart.CartItem{})
	require.NoError(t, err)

	return db
}

func TestGormProductRepository_FindByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("finds existing product", func(t *testing.T) {
		product := seedProduct(t, db, "Standing Desk", "399.99", 4)

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
		assert.Equal(t, "Standing Desk", found.Title)
		assert.True(t, found.UnitPrice.Equal(decimal.RequireFromString("399.99")))
		assert.Equal(t, 4, found.Inventory)
	})

	t.Run("returns ErrNotFound for unknown product", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindBySlug(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Ergo Chair", "249", 7)

	t.Run("finds product by slug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "ergo-chair")
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("returns ErrNotFound for unknown slug", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, "missing-slug")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_ExistsBySlug(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Webcam", "89", 12)

	exists, err := repo.ExistsBySlug(ctx, "webcam")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySlug(ctx, "nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormProductRepository_IsReferenced(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	cartRepo := NewGormCartRepository(db)
	ctx := context.Background()

	t.Run("returns true when a cart item references the product", func(t *testing.T) {
		product := seedProduct(t, db, "Headset", "120", 6)

		c := cart.NewCart()
		require.NoError(t, c.AddItem(product, 1))
		require.NoError(t, cartRepo.Save(ctx, c))

		referenced, err := repo.IsReferenced(ctx, product.ID)
		require.NoError(t, err)
		assert.True(t, referenced)
	})

	t.Run("returns false for an unreferenced product", func(t *testing.T) {
		product := seedProduct(t, db, "Dock", "150", 6)

		referenced, err := repo.IsReferenced(ctx, product.ID)
		require.NoError(t, err)
		assert.False(t, referenced)
	})
}

func TestGormProductRepository_CollectionQueries(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	collection, err := catalog.NewCollection("Office")
	require.NoError(t, err)
	require.NoError(t, db.Save(collection).Error)

	inCollection := seedProduct(t, db, "Notebook", "9", 100)
	inCollection.SetCollection(&collection.ID)
	require.NoError(t, repo.Save(ctx, inCollection))

	seedProduct(t, db, "Pen", "2", 500)

	t.Run("finds products in collection", func(t *testing.T) {
		products, err := repo.FindByCollection(ctx, collection.ID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, inCollection.ID, products[0].ID)
	})

	t.Run("counts products in collection", func(t *testing.T) {
		count, err := repo.CountByCollection(ctx, collection.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("deletes existing product", func(t *testing.T) {
		product := seedProduct(t, db, "Speaker", "75", 9)

		require.NoError(t, repo.Delete(ctx, product.ID))

		_, err := repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns ErrNotFound for unknown product", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
