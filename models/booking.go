package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is an entry of the barbershop service menu.
type Service struct {
	ServiceID       int             `json:"service_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

// Appointment is a booked time slot for a service.
type Appointment struct {
	AppointmentID int       `json:"appointment_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	ServiceID     int       `json:"service_id"`
	StartsAt      time.Time `json:"starts_at"`
	Notes         string    `json:"notes,omitempty"`
}
