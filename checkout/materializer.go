// Package checkout materializes a shopping cart into a persisted order.
package checkout

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"storefront-service/cart"
	"storefront-service/models"
	"storefront-service/storage"
)

// ErrEmptyCart is returned when checkout is attempted with no items.
var ErrEmptyCart = errors.New("cannot checkout an empty cart")

// EventPublisher announces persisted orders to downstream consumers
// (fulfillment queue). Publishing is best-effort: a failure never
// unwinds a persisted order.
type EventPublisher interface {
	PublishOrderPlaced(order models.Order) error
}

// LoyaltyAccruer credits points for a completed order.
type LoyaltyAccruer interface {
	Accrue(email string, total decimal.Decimal) int64
}

// Materializer converts finalized carts into orders. The store write is
// the commit point: the caller either observes the full order persisted
// and the cart cleared, or no change at all.
type Materializer struct {
	store     storage.OrderStore
	shipping  decimal.Decimal
	publisher EventPublisher
	loyalty   LoyaltyAccruer
}

// NewMaterializer creates a materializer writing to store with a flat
// shipping rate. publisher and loyalty may be nil, in which case the
// corresponding side effects are skipped.
func NewMaterializer(store storage.OrderStore, shippingRate decimal.Decimal, publisher EventPublisher, loyalty LoyaltyAccruer) *Materializer {
	return &Materializer{
		store:     store,
		shipping:  shippingRate,
		publisher: publisher,
		loyalty:   loyalty,
	}
}

// Checkout materializes c into a pending order for the given customer,
// persists it, and clears the cart. On any error the cart and the store
// are left untouched so the customer can retry.
func (m *Materializer) Checkout(c *cart.Cart, customer models.CustomerInfo, shipping models.ShippingInfo) (models.Order, error) {
	if c.Len() == 0 {
		return models.Order{}, ErrEmptyCart
	}

	orderID, err := m.store.NextID()
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to assign order id: %w", err)
	}

	// Snapshot each cart line at its current price so later catalog
	// price changes cannot rewrite historical orders.
	items := make([]models.OrderItem, 0, c.Len())
	subtotal := decimal.Zero
	for _, line := range c.Items() {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := models.Order{
		OrderID:         orderID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		ShippingAddress: shipping.Address,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        m.shipping,
		Total:           subtotal.Add(m.shipping),
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := m.store.Append(order); err != nil {
		return models.Order{}, fmt.Errorf("failed to persist order %d: %w", orderID, err)
	}

	// Commit point passed: the order exists. Clear the cart and run the
	// best-effort side effects.
	c.Clear()

	if m.publisher != nil {
		if err := m.publisher.PublishOrderPlaced(order); err != nil {
			log.Printf("Failed to publish order %d, fulfillment will pick it up from the store: %v", orderID, err)
		}
	}
	if m.loyalty != nil && customer.Email != "" {
		points := m.loyalty.Accrue(customer.Email, order.Total)
		log.Printf("Accrued %d loyalty points for %s on order %d", points, customer.Email, orderID)
	}

	log.Printf("Created order %d: %d items, total %s", orderID, len(items), order.Total.String())
	return order, nil
}
