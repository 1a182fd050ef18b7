package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. Products are never deleted, only hidden,
// so order history can always resolve its product references.
type Product struct {
	ProductID   int             `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image,omitempty"`
	Hidden      bool            `json:"hidden,omitempty"`
}
