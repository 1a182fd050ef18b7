package confirmation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/models"
	"storefront-service/storage"
)

func TestResolve_RedirectsToLastOrder(t *testing.T) {
	store := storage.NewMemoryStore()
	for _, id := range []int{11, 12, 13} {
		require.NoError(t, store.Append(models.Order{OrderID: id, Status: models.OrderStatusPending}))
	}

	res, err := Resolve(store)
	require.NoError(t, err)

	assert.Equal(t, StateRedirecting, res.State)
	assert.Equal(t, 13, res.OrderID)
	assert.Equal(t, "/orders/13", res.Redirect)
}

func TestResolve_EmptyStore(t *testing.T) {
	res, err := Resolve(storage.NewMemoryStore())
	require.NoError(t, err)

	assert.Equal(t, StateEmpty, res.State)
	assert.Zero(t, res.OrderID)
	assert.Empty(t, res.Redirect)
}

type brokenStore struct {
	storage.OrderStore
}

func (brokenStore) ListAll() ([]models.Order, error) {
	return nil, errors.New("backend unavailable")
}

func TestResolve_PropagatesStoreError(t *testing.T) {
	_, err := Resolve(brokenStore{})
	assert.Error(t, err)
}
