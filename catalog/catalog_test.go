package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeeded_ListsInSeedOrder(t *testing.T) {
	c := NewSeeded()

	products := c.ListProducts()
	require.NotEmpty(t, products)
	for i := 1; i < len(products); i++ {
		assert.Greater(t, products[i].ProductID, products[i-1].ProductID)
	}
	for _, p := range products {
		assert.False(t, p.Price.IsNegative())
		assert.GreaterOrEqual(t, p.Stock, 0)
	}
}

func TestHideProduct_ExcludedFromListingButStillResolvable(t *testing.T) {
	c := NewSeeded()
	before := len(c.ListProducts())

	require.NoError(t, c.HideProduct(1))

	assert.Len(t, c.ListProducts(), before-1)

	p, exists := c.GetProduct(1)
	require.True(t, exists, "hidden products stay resolvable by id")
	assert.True(t, p.Hidden)
}

func TestAdjustStock(t *testing.T) {
	c := NewSeeded()

	p, _ := c.GetProduct(4)
	require.NoError(t, c.AdjustStock(4, -p.Stock))

	err := c.AdjustStock(4, -1)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	after, _ := c.GetProduct(4)
	assert.Equal(t, 0, after.Stock, "failed adjustment must not change stock")

	assert.ErrorIs(t, c.AdjustStock(999, 1), ErrNotFound)
}
