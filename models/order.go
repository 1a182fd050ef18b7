package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment status of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has been placed but not yet processed.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates the order is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped indicates the order has been handed to the carrier.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered indicates the order reached the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// Order is the immutable record of a completed checkout.
// Total is always Subtotal + Shipping.
type Order struct {
	OrderID         int             `json:"order_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem is one line of an order. Price is snapshotted at checkout
// time and stays fixed even if the catalog price changes later.
type OrderItem struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CustomerInfo identifies the customer placing an order.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ShippingInfo carries the delivery details for an order.
type ShippingInfo struct {
	Address string `json:"address"`
}
