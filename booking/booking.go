// Package booking manages the barbershop service menu and appointment
// slots.
package booking

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"storefront-service/models"
)

var (
	// ErrUnknownService is returned when booking an unlisted service.
	ErrUnknownService = errors.New("unknown service")
	// ErrPastStartTime is returned when the requested slot is in the past.
	ErrPastStartTime = errors.New("appointment must start in the future")
)

// Book holds the service menu and the appointments taken against it.
type Book struct {
	mu           sync.Mutex
	services     []models.Service
	appointments []models.Appointment
	nextID       int
	now          func() time.Time
}

// NewSeededBook returns a book with the default service menu.
func NewSeededBook() *Book {
	return &Book{
		services: []models.Service{
			{ServiceID: 1, Name: "Classic Cut", Price: decimal.RequireFromString("30.00"), DurationMinutes: 45},
			{ServiceID: 2, Name: "Skin Fade", Price: decimal.RequireFromString("35.00"), DurationMinutes: 45},
			{ServiceID: 3, Name: "Beard Trim", Price: decimal.RequireFromString("20.00"), DurationMinutes: 30},
			{ServiceID: 4, Name: "Hot Towel Shave", Price: decimal.RequireFromString("28.00"), DurationMinutes: 30},
			{ServiceID: 5, Name: "Cut & Beard Combo", Price: decimal.RequireFromString("45.00"), DurationMinutes: 75},
		},
		nextID: 1,
		now:    time.Now,
	}
}

// ListServices returns the service menu.
func (b *Book) ListServices() []models.Service {
	b.mu.Lock()
	defer b.mu.Unlock()

	services := make([]models.Service, len(b.services))
	copy(services, b.services)
	return services
}

// CreateAppointment books a slot for a listed service.
func (b *Book) CreateAppointment(req models.CreateAppointmentRequest) (models.Appointment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.serviceExists(req.ServiceID) {
		return models.Appointment{}, ErrUnknownService
	}
	if !req.StartsAt.After(b.now()) {
		return models.Appointment{}, ErrPastStartTime
	}

	appointment := models.Appointment{
		AppointmentID: b.nextID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceID:     req.ServiceID,
		StartsAt:      req.StartsAt,
		Notes:         req.Notes,
	}
	b.nextID++
	b.appointments = append(b.appointments, appointment)
	return appointment, nil
}

// ListAppointments returns all booked appointments in creation order.
func (b *Book) ListAppointments() []models.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()

	appointments := make([]models.Appointment, len(b.appointments))
	copy(appointments, b.appointments)
	return appointments
}

func (b *Book) serviceExists(serviceID int) bool {
	for _, s := range b.services {
		if s.ServiceID == serviceID {
			return true
		}
	}
	return false
}
