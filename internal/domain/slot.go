package domain

import "fmt"

// TimeSlot represents a one-hour pickup window
type TimeSlot struct {
	Hour int
	Time string // "HH:00"
}

// NewTimeSlot creates a slot for the given hour of day
func NewTimeSlot(hour int) TimeSlot {
	return TimeSlot{
		Hour: hour,
		Time: fmt.Sprintf("%02d:00", hour),
	}
}

// BusinessHours is the daily window during which slots exist.
// Start is inclusive, End is exclusive.
type BusinessHours struct {
	Start int
	End   int
}

// Contains returns true if the hour is a bookable slot start
func (h BusinessHours) Contains(hour int) bool {
	return hour >= h.Start && hour < h.End
}

// Len returns the number of slots in the window
func (h BusinessHours) Len() int {
	if h.End <= h.Start {
		return 0
	}
	return h.End - h.Start
}

// Validate checks that the window fits into a day
func (h BusinessHours) Validate() error {
	if h.Start < 0 || h.End > 24 || h.Start >= h.End {
		return fmt.Errorf("%w: start=%d end=%d", ErrInvalidBusinessHours, h.Start, h.End)
	}
	return nil
}
