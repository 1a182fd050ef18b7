// Package confirmation resolves the post-checkout confirmation view:
// it points the caller at the most recently placed order, or reports
// that there is nothing to show.
package confirmation

import (
	"fmt"

	"storefront-service/storage"
)

// State is the terminal state of a confirmation resolution.
type State string

const (
	// StateRedirecting means an order exists and the caller should be
	// sent to its detail view.
	StateRedirecting State = "redirecting"
	// StateEmpty means no orders have been placed. This is a valid
	// display state, not an error.
	StateEmpty State = "empty"
)

// Resolution is the outcome of resolving the confirmation view.
type Resolution struct {
	State    State
	OrderID  int
	Redirect string
}

// Resolve reads the full order history and selects the last entry in
// insertion order as the most recent. The store is never mutated.
func Resolve(store storage.OrderStore) (Resolution, error) {
	orders, err := store.ListAll()
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to read order history: %w", err)
	}

	if len(orders) == 0 {
		return Resolution{State: StateEmpty}, nil
	}

	latest := orders[len(orders)-1]
	return Resolution{
		State:    StateRedirecting,
		OrderID:  latest.OrderID,
		Redirect: fmt.Sprintf("/orders/%d", latest.OrderID),
	}, nil
}
