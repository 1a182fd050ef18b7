package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/booking"
	"storefront-service/models"
)

type BookingHandler struct {
	book *booking.Book
}

func NewBookingHandler(book *booking.Book) *BookingHandler {
	return &BookingHandler{book: book}
}

// ListServices handles GET /services
func (h *BookingHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.book.ListServices()})
}

// CreateAppointment handles POST /appointments
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	appointment, err := h.book.CreateAppointment(req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnknownService):
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "NOT_FOUND",
				Message: "Service not found",
			})
		case errors.Is(err, booking.ErrPastStartTime):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INVALID_INPUT",
				Message: "Appointment must start in the future",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "BOOKING_ERROR",
				Message: "Failed to book the appointment",
				Details: err.Error(),
			})
		}
		return
	}

	log.Printf("Booked appointment %d for service %d at %s",
		appointment.AppointmentID, appointment.ServiceID, appointment.StartsAt)

	c.JSON(http.StatusCreated, appointment)
}

// ListAppointments handles GET /appointments
func (h *BookingHandler) ListAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"appointments": h.book.ListAppointments()})
}
