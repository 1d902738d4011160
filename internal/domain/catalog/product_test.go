package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Organic Honey", "organic-honey", decimal.NewFromFloat(12.50), 20)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Organic Honey", product.Title)
		assert.Equal(t, "organic-honey", product.Slug)
		assert.True(t, product.UnitPrice.Equal(decimal.NewFromFloat(12.50)))
		assert.Equal(t, 20, product.Inventory)
		assert.Nil(t, product.CollectionID)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("derives slug from title when empty", func(t *testing.T) {
		product, err := NewProduct("Cast Iron Skillet 12\"", "", decimal.NewFromInt(40), 5)
		require.NoError(t, err)
		assert.Equal(t, "cast-iron-skillet-12", product.Slug)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewProduct("", "slug", decimal.NewFromInt(1), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Title cannot be empty")
	})

	t.Run("fails with invalid slug characters", func(t *testing.T) {
		_, err := NewProduct("Widget", "Widget_01!", decimal.NewFromInt(1), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lowercase letters")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Widget", "widget", decimal.NewFromInt(-1), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("fails with negative inventory", func(t *testing.T) {
		_, err := NewProduct("Widget", "widget", decimal.NewFromInt(1), -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Inventory cannot be negative")
	})
}

func TestProductUpdate(t *testing.T) {
	product, err := NewProduct("Widget", "widget", decimal.NewFromInt(10), 3)
	require.NoError(t, err)

	t.Run("updates title and description", func(t *testing.T) {
		err := product.Update("Better Widget", "Now with fewer sharp edges")
		require.NoError(t, err)
		assert.Equal(t, "Better Widget", product.Title)
		assert.Equal(t, "Now with fewer sharp edges", product.Description)
		assert.Equal(t, 2, product.GetVersion())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		err := product.Update("", "desc")
		require.Error(t, err)
	})
}

func TestProductInventory(t *testing.T) {
	product, err := NewProduct("Widget", "widget", decimal.NewFromInt(10), 5)
	require.NoError(t, err)

	t.Run("can fulfill within inventory", func(t *testing.T) {
		assert.True(t, product.CanFulfill(5))
		assert.False(t, product.CanFulfill(6))
	})

	t.Run("set inventory replaces count", func(t *testing.T) {
		require.NoError(t, product.SetInventory(2))
		assert.Equal(t, 2, product.Inventory)
		assert.False(t, product.CanFulfill(3))
	})

	t.Run("rejects negative inventory", func(t *testing.T) {
		err := product.SetInventory(-1)
		require.Error(t, err)
	})
}

func TestProductPriceWithTax(t *testing.T) {
	product, err := NewProduct("Widget", "widget", decimal.NewFromFloat(10.00), 1)
	require.NoError(t, err)

	assert.Equal(t, "11", product.PriceWithTax().String())

	require.NoError(t, product.SetUnitPrice(decimal.NewFromFloat(12.99)))
	assert.Equal(t, "14.29", product.PriceWithTax().StringFixed(2))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Organic Honey":       "organic-honey",
		"  Spaced   Out  ":    "spaced-out",
		"Café au Lait":        "caf-au-lait",
		"100% Cotton T-Shirt": "100-cotton-t-shirt",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
