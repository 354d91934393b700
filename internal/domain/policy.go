package domain

import (
	"fmt"
	"time"
)

// BookingPolicy describes which pickup times a customer may select.
// All calendar and hour checks happen in Location.
type BookingPolicy struct {
	MinLeadDays   int // Earliest pickup, in days from now
	MaxLeadDays   int // Latest pickup, in days from now
	BusinessHours BusinessHours
	Location      *time.Location
}

// DefaultBookingPolicy returns the 5..30 days, 9-18 policy in the given location
func DefaultBookingPolicy(loc *time.Location) *BookingPolicy {
	return &BookingPolicy{
		MinLeadDays: DefaultMinLeadDays,
		MaxLeadDays: DefaultMaxLeadDays,
		BusinessHours: BusinessHours{
			Start: DefaultBusinessStartHour,
			End:   DefaultBusinessEndHour,
		},
		Location: loc,
	}
}

// Check validates the policy parameters
func (p *BookingPolicy) Check() error {
	if p.MinLeadDays < 0 || p.MaxLeadDays < p.MinLeadDays {
		return fmt.Errorf("%w: lead days min=%d max=%d", ErrInvalidPolicy, p.MinLeadDays, p.MaxLeadDays)
	}
	if p.Location == nil {
		return fmt.Errorf("%w: location is required", ErrInvalidPolicy)
	}
	return p.BusinessHours.Validate()
}

// Validate reports whether candidate may be booked at the moment now.
// Rules are evaluated in order and the first failing one is returned.
func (p *BookingPolicy) Validate(candidate time.Time, holidays []Holiday, now time.Time) error {
	local := candidate.In(p.loc())

	if local.Before(p.EarliestPickup(now)) {
		return fmt.Errorf("%w: pickup must be at least %d days from now", ErrTooSoon, p.MinLeadDays)
	}

	if local.After(p.LatestPickup(now)) {
		return fmt.Errorf("%w: pickup must be within %d days from now", ErrTooFar, p.MaxLeadDays)
	}

	if IsWeekend(local) {
		return fmt.Errorf("%w: %s is a %s", ErrNonBusinessDay, local.Format(DateFormat), local.Weekday())
	}

	if IsHoliday(holidays, local) {
		return fmt.Errorf("%w: %s", ErrHoliday, local.Format(DateFormat))
	}

	if !p.BusinessHours.Contains(local.Hour()) {
		return fmt.Errorf("%w: hour %d is not within %02d:00-%02d:00",
			ErrOutsideBusinessHours, local.Hour(), p.BusinessHours.Start, p.BusinessHours.End)
	}

	if local.Minute() != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
		return fmt.Errorf("%w: pickup must start on the hour", ErrInvalidTimeSlot)
	}

	return nil
}

// EarliestPickup returns the first instant allowed by MinLeadDays
func (p *BookingPolicy) EarliestPickup(now time.Time) time.Time {
	return now.In(p.loc()).AddDate(0, 0, p.MinLeadDays)
}

// LatestPickup returns the last instant allowed by MaxLeadDays
func (p *BookingPolicy) LatestPickup(now time.Time) time.Time {
	return now.In(p.loc()).AddDate(0, 0, p.MaxLeadDays)
}

// DayStart returns midnight of t's calendar day in the policy location
func (p *BookingPolicy) DayStart(t time.Time) time.Time {
	local := t.In(p.loc())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.loc())
}

// SlotTime returns the instant of the given hour on date's calendar day
func (p *BookingPolicy) SlotTime(date time.Time, hour int) time.Time {
	day := p.DayStart(date)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, p.loc())
}

func (p *BookingPolicy) loc() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// IsWeekend returns true for Saturdays and Sundays
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
