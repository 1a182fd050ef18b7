package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-service/cart"
	"storefront-service/catalog"
	"storefront-service/models"
)

// CartHandler is the session-scoped cart controller: it owns the live
// carts and is the only place that mutates them.
type CartHandler struct {
	mu      sync.RWMutex
	carts   map[string]*cart.Cart
	catalog *catalog.Catalog
}

func NewCartHandler(cat *catalog.Catalog) *CartHandler {
	return &CartHandler{
		carts:   make(map[string]*cart.Cart),
		catalog: cat,
	}
}

// CreateCart handles POST /carts
func (h *CartHandler) CreateCart(c *gin.Context) {
	cartID := uuid.NewString()

	h.mu.Lock()
	h.carts[cartID] = cart.New()
	h.mu.Unlock()

	log.Printf("Created cart %s", cartID)

	c.JSON(http.StatusCreated, models.CreateCartResponse{CartID: cartID})
}

// GetCartContents handles GET /carts/{cartId}
func (h *CartHandler) GetCartContents(c *gin.Context) {
	sc, ok := h.lookup(c)
	if !ok {
		return
	}

	h.mu.RLock()
	items := sc.Items()
	totalItems := sc.TotalItems()
	totalPrice := sc.TotalPrice()
	h.mu.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_items": totalItems,
		"total_price": totalPrice,
	})
}

// AddItem handles POST /carts/{cartId}/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sc, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	// Products must exist in the catalog at add-time.
	product, exists := h.catalog.GetProduct(req.ProductID)
	if !exists || product.Hidden {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
		return
	}

	h.mu.Lock()
	err := sc.AddItem(product, req.Quantity)
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INVALID_QUANTITY",
				Message: "Quantity must be at least 1",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "CART_ERROR",
			Message: "Failed to add item to cart",
			Details: err.Error(),
		})
		return
	}

	log.Printf("Added %d of product %d to cart %s", req.Quantity, req.ProductID, c.Param("cartId"))

	c.Status(http.StatusNoContent)
}

// RemoveItem handles DELETE /carts/{cartId}/items/{productId}
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sc, ok := h.lookup(c)
	if !ok {
		return
	}

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	h.mu.Lock()
	sc.RemoveItem(productID)
	h.mu.Unlock()

	c.Status(http.StatusNoContent)
}

// UpdateQuantity handles PUT /carts/{cartId}/items/{productId}
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sc, ok := h.lookup(c)
	if !ok {
		return
	}

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.mu.Lock()
	sc.UpdateQuantity(productID, req.Quantity)
	h.mu.Unlock()

	c.Status(http.StatusNoContent)
}

// GetCart returns the cart for cartID (helper for the checkout handler).
func (h *CartHandler) GetCart(cartID string) (*cart.Cart, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sc, exists := h.carts[cartID]
	return sc, exists
}

// lookup resolves the cartId path parameter, writing the 404 itself so
// handlers only deal with the found case.
func (h *CartHandler) lookup(c *gin.Context) (*cart.Cart, bool) {
	cartID := c.Param("cartId")

	h.mu.RLock()
	sc, exists := h.carts[cartID]
	h.mu.RUnlock()

	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Cart not found",
		})
		return nil, false
	}
	return sc, true
}

func parseProductID(c *gin.Context) (int, bool) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid product ID",
			Details: "Product ID must be a positive integer",
		})
		return 0, false
	}
	return productID, true
}
