package models

import "time"

type CreateCartResponse struct {
	CartID string `json:"cart_id"`
}

type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

type ConfirmationResponse struct {
	State    string `json:"state"`
	OrderID  int    `json:"order_id,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAppointmentRequest struct {
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
	ServiceID     int       `json:"service_id" binding:"required,min=1"`
	StartsAt      time.Time `json:"starts_at" binding:"required"`
	Notes         string    `json:"notes"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
