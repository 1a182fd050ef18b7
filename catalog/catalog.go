// Package catalog holds the purchasable product list for the storefront.
package catalog

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"storefront-service/models"
)

var (
	// ErrNotFound is returned when a product id is not in the catalog.
	ErrNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when an adjustment would take
	// stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Catalog is the in-memory product list. Listings follow seed order.
type Catalog struct {
	mu       sync.RWMutex
	products map[int]*models.Product
	order    []int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{products: make(map[int]*models.Product)}
}

// NewSeeded creates a catalog filled with the default storefront
// inventory.
func NewSeeded() *Catalog {
	c := New()
	for _, p := range seedProducts() {
		c.Put(p)
	}
	return c
}

// Put inserts or replaces a product.
func (c *Catalog) Put(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.products[product.ProductID]; !exists {
		c.order = append(c.order, product.ProductID)
	}
	p := product
	c.products[product.ProductID] = &p
}

// ListProducts returns all visible products in seed order.
func (c *Catalog) ListProducts() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]models.Product, 0, len(c.order))
	for _, id := range c.order {
		p := c.products[id]
		if p.Hidden {
			continue
		}
		products = append(products, *p)
	}
	return products
}

// GetProduct returns the product with the given id, hidden or not.
func (c *Catalog) GetProduct(productID int) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, exists := c.products[productID]
	if !exists {
		return models.Product{}, false
	}
	return *p, true
}

// AdjustStock changes a product's stock by delta. Stock never goes
// negative.
func (c *Catalog) AdjustStock(productID, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, exists := c.products[productID]
	if !exists {
		return ErrNotFound
	}
	if p.Stock+delta < 0 {
		return ErrInsufficientStock
	}
	p.Stock += delta
	return nil
}

// HideProduct removes a product from listings without deleting it, so
// existing orders keep a resolvable product reference.
func (c *Catalog) HideProduct(productID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, exists := c.products[productID]
	if !exists {
		return ErrNotFound
	}
	p.Hidden = true
	return nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{ProductID: 1, Name: "Matte Clay Pomade", Description: "Strong hold, no shine", Price: decimal.RequireFromString("18.00"), Stock: 40, Image: "/images/products/pomade-matte.jpg"},
		{ProductID: 2, Name: "Classic Shine Pomade", Description: "Medium hold, high shine", Price: decimal.RequireFromString("16.50"), Stock: 35, Image: "/images/products/pomade-shine.jpg"},
		{ProductID: 3, Name: "Beard Oil", Description: "Cedarwood and argan oil blend", Price: decimal.RequireFromString("14.00"), Stock: 50, Image: "/images/products/beard-oil.jpg"},
		{ProductID: 4, Name: "Straight Razor", Description: "Carbon steel, walnut handle", Price: decimal.RequireFromString("45.00"), Stock: 12, Image: "/images/products/razor.jpg"},
		{ProductID: 5, Name: "Boar Bristle Brush", Description: "Firm bristles for thick hair", Price: decimal.RequireFromString("22.00"), Stock: 25, Image: "/images/products/brush.jpg"},
		{ProductID: 6, Name: "Sea Salt Spray", Description: "Texture and volume", Price: decimal.RequireFromString("13.50"), Stock: 30, Image: "/images/products/salt-spray.jpg"},
	}
}
