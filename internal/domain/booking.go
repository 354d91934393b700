package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a pickup reservation for an order
type Booking struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	PickupAt    time.Time  // Start of the one-hour pickup slot
	OrderDate   *time.Time // Date-only, optional
	OrderNumber string
	Status      BookingStatus

	CreatedAt time.Time
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// PickupHour returns the hour of the pickup in the given location
func (b *Booking) PickupHour(loc *time.Location) int {
	return b.PickupAt.In(loc).Hour()
}

// ParseBookingStatus converts a raw string into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// BookingsPeriodFilter selects bookings by pickup time
type BookingsPeriodFilter struct {
	From            time.Time // Inclusive
	To              time.Time // Exclusive
	IncludeInactive bool      // Also return cancelled bookings
}
