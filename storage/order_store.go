// Package storage persists the order history. The store contract is a
// single ordered list of orders: appends never overwrite earlier
// entries, and list order is chronological.
package storage

import "storefront-service/models"

// OrderStore is the narrow persistence capability the checkout core
// depends on. A transactional backend can replace the file store
// without touching the cart/order logic.
type OrderStore interface {
	// Append adds one order to the end of the history.
	Append(order models.Order) error
	// ListAll returns the full history in insertion order. A missing or
	// unreadable backing blob yields an empty list, never an error the
	// end user sees.
	ListAll() ([]models.Order, error)
	// NextID returns an order id one above the highest id in the store.
	NextID() (int, error)
}
