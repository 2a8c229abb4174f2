//go:build unit

package catalog_test

import (
	"testing"

	"space-booking/internal/domain/catalog"
	"space-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Coffee", actual.Name())
		assert.Equal(t, "drinks", actual.Category())
		assert.Equal(t, int64(200), actual.PriceCents())
		assert.Equal(t, 20, actual.Stock())
	})

	t.Run("category is lowercased", func(t *testing.T) {
		actual, err := catalog.NewItem("Projector", "  Equipment ", 1500, 2)
		require.NoError(t, err)
		assert.Equal(t, "equipment", actual.Category())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ItemBuilder)
		errIs  error
	}{
		{
			name:   "empty name",
			mutate: func(b *builder.ItemBuilder) { b.WithName(" ") },
			errIs:  catalog.ErrEmptyName,
		},
		{
			name:   "negative price",
			mutate: func(b *builder.ItemBuilder) { b.WithPriceCents(-200) },
			errIs:  catalog.ErrNegativePrice,
		},
		{
			name:   "negative stock",
			mutate: func(b *builder.ItemBuilder) { b.WithStock(-1) },
			errIs:  catalog.ErrNegativeStock,
		},
		{
			name:   "zero stock is allowed",
			mutate: func(b *builder.ItemBuilder) { b.WithStock(0) },
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewItemBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestCanFulfill(t *testing.T) {
	item := builder.NewItemBuilder().WithStock(5).BuildStored()

	assert.True(t, item.CanFulfill(1))
	assert.True(t, item.CanFulfill(5))
	assert.False(t, item.CanFulfill(6))
	assert.False(t, item.CanFulfill(0))
	assert.False(t, item.CanFulfill(-1))
}
