package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/models"
)

func fixedBook(now time.Time) *Book {
	b := NewSeededBook()
	b.now = func() time.Time { return now }
	return b
}

func TestCreateAppointment(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := fixedBook(now)

	first, err := b.CreateAppointment(models.CreateAppointmentRequest{
		CustomerName:  "Sam",
		CustomerPhone: "555-0101",
		ServiceID:     2,
		StartsAt:      now.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.AppointmentID)

	second, err := b.CreateAppointment(models.CreateAppointmentRequest{
		CustomerName:  "Alex",
		CustomerPhone: "555-0102",
		ServiceID:     3,
		StartsAt:      now.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.AppointmentID)

	assert.Len(t, b.ListAppointments(), 2)
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := fixedBook(now)

	_, err := b.CreateAppointment(models.CreateAppointmentRequest{
		CustomerName:  "Sam",
		CustomerPhone: "555-0101",
		ServiceID:     99,
		StartsAt:      now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Empty(t, b.ListAppointments())
}

func TestCreateAppointment_PastStartTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := fixedBook(now)

	for _, startsAt := range []time.Time{now, now.Add(-time.Minute)} {
		_, err := b.CreateAppointment(models.CreateAppointmentRequest{
			CustomerName:  "Sam",
			CustomerPhone: "555-0101",
			ServiceID:     1,
			StartsAt:      startsAt,
		})
		assert.ErrorIs(t, err, ErrPastStartTime)
	}
}

func TestListServices(t *testing.T) {
	b := NewSeededBook()

	services := b.ListServices()
	require.NotEmpty(t, services)
	for _, s := range services {
		assert.Positive(t, s.DurationMinutes)
		assert.True(t, s.Price.IsPositive())
	}
}
