// Package cart implements the shopping cart model: an insertion-ordered
// set of line items keyed by product id, with additive merges and
// derived totals. A Cart is owned by whichever session controller
// created it; the package itself holds no shared state.
package cart

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"storefront-service/models"
)

// ErrInvalidQuantity is returned when an item is added with a quantity
// below one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Cart holds the items a customer has selected but not yet purchased.
// Items keep insertion order; product ids are unique within a cart.
type Cart struct {
	items []models.CartItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem puts quantity units of product into the cart. If the product
// is already present the quantities are summed, otherwise a new line is
// appended with a snapshot of the product's display fields.
func (c *Cart) AddItem(product models.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i, item := range c.items {
		if item.ProductID == product.ProductID {
			c.items[i].Quantity += quantity
			return nil
		}
	}

	c.items = append(c.items, models.CartItem{
		ProductID: product.ProductID,
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  quantity,
	})
	return nil
}

// RemoveItem deletes the line for productID. Removing an absent product
// is a no-op, not an error.
func (c *Cart) RemoveItem(productID int) {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for productID directly. A quantity
// of zero or less removes the line. An absent product id is a no-op
// with a logged diagnostic; the caller is expected to only update lines
// it has rendered.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i, item := range c.items {
		if item.ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
	log.Printf("UpdateQuantity: product %d not in cart, ignoring", productID)
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear empties the cart. Used after a successful checkout.
func (c *Cart) Clear() {
	c.items = nil
}
