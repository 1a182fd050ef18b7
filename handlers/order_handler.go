package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-service/confirmation"
	"storefront-service/models"
	"storefront-service/storage"
)

type OrderHandler struct {
	store storage.OrderStore
}

func NewOrderHandler(store storage.OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.store.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "STORE_ERROR",
			Message: "Failed to read order history",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder handles GET /orders/{orderId}
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid order ID",
			Details: "Order ID must be a positive integer",
		})
		return
	}

	orders, err := h.store.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "STORE_ERROR",
			Message: "Failed to read order history",
			Details: err.Error(),
		})
		return
	}

	for _, order := range orders {
		if order.OrderID == orderID {
			c.JSON(http.StatusOK, order)
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "NOT_FOUND",
		Message: "Order not found",
	})
}

// Confirmation handles GET /orders/confirmation. It reports where the
// confirmation page should go: the latest order's detail view, or an
// empty state when nothing has been ordered yet.
func (h *OrderHandler) Confirmation(c *gin.Context) {
	res, err := confirmation.Resolve(h.store)
	if err != nil {
		// The store degrades rather than erroring; if a future backend
		// does fail, show the empty state rather than a broken page.
		log.Printf("Confirmation resolution failed, showing empty state: %v", err)
		c.JSON(http.StatusOK, models.ConfirmationResponse{State: string(confirmation.StateEmpty)})
		return
	}

	c.JSON(http.StatusOK, models.ConfirmationResponse{
		State:    string(res.State),
		OrderID:  res.OrderID,
		Redirect: res.Redirect,
	})
}
