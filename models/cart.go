package models

import "github.com/shopspring/decimal"

// CartItem is one line of a shopping cart. It carries a copy of the
// product fields needed for display so the cart can render without
// re-querying the catalog.
type CartItem struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}
