package storage

import (
	"sync"

	"storefront-service/models"
)

// MemoryStore is an in-memory OrderStore, used in tests and available
// as a throwaway backend when no data file is configured.
type MemoryStore struct {
	mu     sync.Mutex
	orders []models.Order
}

// NewMemoryStore creates an empty in-memory order store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds an order to the end of the list.
func (s *MemoryStore) Append(order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

// ListAll returns a copy of the orders in insertion order.
func (s *MemoryStore) ListAll() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, nil
}

// NextID returns an id one above the highest stored order id.
func (s *MemoryStore) NextID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, order := range s.orders {
		if order.OrderID >= next {
			next = order.OrderID + 1
		}
	}
	return next, nil
}
