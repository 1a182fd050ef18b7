package checkout

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/cart"
	"storefront-service/models"
	"storefront-service/storage"
)

var (
	testCustomer = models.CustomerInfo{Name: "Jamie Cut", Email: "jamie@example.com"}
	testShipping = models.ShippingInfo{Address: "12 Fade Street"}
)

func cartWith(t *testing.T, lines ...models.Product) *cart.Cart {
	t.Helper()
	c := cart.New()
	for _, p := range lines {
		require.NoError(t, c.AddItem(p, 1))
	}
	return c
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCheckout_TotalsAndCartCleared(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewMaterializer(store, dec("5"), nil, nil)

	c := cart.New()
	require.NoError(t, c.AddItem(models.Product{ProductID: 1, Name: "pomade", Price: dec("10")}, 2))
	require.NoError(t, c.AddItem(models.Product{ProductID: 2, Name: "comb", Price: dec("5")}, 1))

	order, err := m.Checkout(c, testCustomer, testShipping)
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(dec("25")), "subtotal was %s", order.Subtotal)
	assert.True(t, order.Total.Equal(dec("30")), "total was %s", order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.False(t, order.CreatedAt.IsZero())

	assert.Equal(t, 0, c.TotalItems(), "cart must be cleared after checkout")

	persisted, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, order.OrderID, persisted[0].OrderID)
}

func TestCheckout_EmptyCart(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewMaterializer(store, dec("5"), nil, nil)

	_, err := m.Checkout(cart.New(), testCustomer, testShipping)
	assert.ErrorIs(t, err, ErrEmptyCart)

	persisted, err := store.ListAll()
	require.NoError(t, err)
	assert.Empty(t, persisted, "store must be unchanged after a rejected checkout")
}

func TestCheckout_OrderIDsAreUnique(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewMaterializer(store, dec("5"), nil, nil)

	first, err := m.Checkout(cartWith(t, models.Product{ProductID: 1, Price: dec("10")}), testCustomer, testShipping)
	require.NoError(t, err)
	second, err := m.Checkout(cartWith(t, models.Product{ProductID: 1, Price: dec("10")}), testCustomer, testShipping)
	require.NoError(t, err)

	assert.Equal(t, first.OrderID+1, second.OrderID)
}

func TestCheckout_PriceSnapshotIsDecoupledFromCatalog(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewMaterializer(store, dec("5"), nil, nil)

	p := models.Product{ProductID: 1, Name: "razor", Price: dec("40.00")}
	c := cartWith(t, p)

	_, err := m.Checkout(c, testCustomer, testShipping)
	require.NoError(t, err)

	// The catalog price changing later must not affect the stored order.
	p.Price = dec("99.00")

	persisted, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0].Items[0].Price.Equal(dec("40.00")))
}

type failingStore struct {
	storage.OrderStore
}

func (f failingStore) Append(models.Order) error {
	return errors.New("disk full")
}

func TestCheckout_PersistFailureLeavesCartIntact(t *testing.T) {
	store := failingStore{OrderStore: storage.NewMemoryStore()}
	m := NewMaterializer(store, dec("5"), nil, nil)

	c := cartWith(t, models.Product{ProductID: 1, Price: dec("10")})
	_, err := m.Checkout(c, testCustomer, testShipping)

	require.Error(t, err)
	assert.Equal(t, 1, c.TotalItems(), "cart must survive a failed persist for retry")
}

type failingPublisher struct{}

func (failingPublisher) PublishOrderPlaced(models.Order) error {
	return errors.New("broker unavailable")
}

func TestCheckout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewMaterializer(store, dec("5"), failingPublisher{}, nil)

	c := cartWith(t, models.Product{ProductID: 1, Price: dec("10")})
	order, err := m.Checkout(c, testCustomer, testShipping)

	require.NoError(t, err)
	assert.Equal(t, 0, c.TotalItems())

	persisted, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, order.OrderID, persisted[0].OrderID)
}

type recordingLoyalty struct {
	email  string
	points int64
}

func (r *recordingLoyalty) Accrue(email string, total decimal.Decimal) int64 {
	r.email = email
	r.points = total.IntPart()
	return r.points
}

func TestCheckout_AccruesLoyaltyPoints(t *testing.T) {
	store := storage.NewMemoryStore()
	loyalty := &recordingLoyalty{}
	m := NewMaterializer(store, dec("5"), nil, loyalty)

	c := cart.New()
	require.NoError(t, c.AddItem(models.Product{ProductID: 1, Price: dec("20")}, 2))

	_, err := m.Checkout(c, testCustomer, testShipping)
	require.NoError(t, err)

	assert.Equal(t, "jamie@example.com", loyalty.email)
	assert.Equal(t, int64(45), loyalty.points)
}
