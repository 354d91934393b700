package domain

import "errors"

// Booking window rejections. The message is the reason reported to the customer.
var (
	ErrTooSoon              = errors.New("too soon")
	ErrTooFar               = errors.New("too far")
	ErrNonBusinessDay       = errors.New("non-business day")
	ErrHoliday              = errors.New("holiday")
	ErrOutsideBusinessHours = errors.New("outside business hours")
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
)

var (
	// ErrInvalidStatus is returned for an unknown booking status
	ErrInvalidStatus = errors.New("domain: invalid booking status")

	// ErrInvalidBusinessHours is returned when the hours do not fit into a day
	ErrInvalidBusinessHours = errors.New("domain: invalid business hours")

	// ErrInvalidPolicy is returned for an inconsistent booking policy
	ErrInvalidPolicy = errors.New("domain: invalid booking policy")
)

var rejections = []error{
	ErrTooSoon,
	ErrTooFar,
	ErrNonBusinessDay,
	ErrHoliday,
	ErrOutsideBusinessHours,
	ErrInvalidTimeSlot,
}

// IsRejection returns true if err is one of the booking window rejections
func IsRejection(err error) bool {
	_, ok := RejectionReason(err)
	return ok
}

// RejectionReason returns the short reason ("too soon", "holiday", ...) carried by err
func RejectionReason(err error) (string, bool) {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return r.Error(), true
		}
	}
	return "", false
}
