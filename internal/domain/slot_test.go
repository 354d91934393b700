package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeSlot(t *testing.T) {
	assert.Equal(t, TimeSlot{Hour: 9, Time: "09:00"}, NewTimeSlot(9))
	assert.Equal(t, TimeSlot{Hour: 17, Time: "17:00"}, NewTimeSlot(17))
}

func TestBusinessHours(t *testing.T) {
	h := BusinessHours{Start: 9, End: 18}

	assert.Equal(t, 9, h.Len())
	assert.True(t, h.Contains(9))
	assert.True(t, h.Contains(17))
	assert.False(t, h.Contains(18))
	assert.False(t, h.Contains(8))
	assert.NoError(t, h.Validate())

	assert.Equal(t, 0, BusinessHours{Start: 10, End: 10}.Len())
	assert.ErrorIs(t, BusinessHours{Start: 10, End: 10}.Validate(), ErrInvalidBusinessHours)
	assert.ErrorIs(t, BusinessHours{Start: -1, End: 10}.Validate(), ErrInvalidBusinessHours)
	assert.ErrorIs(t, BusinessHours{Start: 9, End: 25}.Validate(), ErrInvalidBusinessHours)
}

func TestBooking_Status(t *testing.T) {
	b := &Booking{Status: StatusConfirmed}
	assert.True(t, b.IsActive())
	assert.False(t, b.IsCancelled())

	b.Status = StatusPending
	assert.True(t, b.IsActive())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.True(t, b.IsCancelled())

	status, err := ParseBookingStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBooking_PickupHour(t *testing.T) {
	b := &Booking{PickupAt: time.Date(2025, 11, 13, 1, 0, 0, 0, time.UTC)}
	assert.Equal(t, 1, b.PickupHour(time.UTC))
	assert.Equal(t, 10, b.PickupHour(time.FixedZone("JST", 9*3600)))
}

func TestSession_IsValid(t *testing.T) {
	now := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: now.Add(time.Hour)}

	assert.True(t, s.IsValid(now))
	assert.False(t, s.IsValid(now.Add(time.Hour)))

	revoked := now.Add(-time.Minute)
	s.RevokedAt = &revoked
	assert.False(t, s.IsValid(now))
}

func TestRejectionReason(t *testing.T) {
	reason, ok := RejectionReason(fmt.Errorf("%w: 2025-11-14", ErrHoliday))
	assert.True(t, ok)
	assert.Equal(t, "holiday", reason)

	_, ok = RejectionReason(ErrInvalidStatus)
	assert.False(t, ok)
	assert.False(t, IsRejection(nil))
}
