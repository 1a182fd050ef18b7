package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/checkout"
	"storefront-service/models"
)

type CheckoutHandler struct {
	cartHandler  *CartHandler
	materializer *checkout.Materializer
}

func NewCheckoutHandler(cartHandler *CartHandler, materializer *checkout.Materializer) *CheckoutHandler {
	return &CheckoutHandler{
		cartHandler:  cartHandler,
		materializer: materializer,
	}
}

// Checkout handles POST /carts/{cartId}/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	cartID := c.Param("cartId")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	sc, exists := h.cartHandler.GetCart(cartID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Cart not found",
		})
		return
	}

	order, err := h.materializer.Checkout(sc,
		models.CustomerInfo{Name: req.CustomerName, Email: req.CustomerEmail},
		models.ShippingInfo{Address: req.ShippingAddress},
	)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "EMPTY_CART",
				Message: "Cannot checkout an empty shopping cart",
			})
			return
		}
		log.Printf("Checkout failed for cart %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "ORDER_PROCESSING_ERROR",
			Message: "Failed to place the order, the cart was left unchanged",
			Details: err.Error(),
		})
		return
	}

	log.Printf("Successfully checked out cart %s, created order %d", cartID, order.OrderID)

	c.JSON(http.StatusCreated, order)
}
