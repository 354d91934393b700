package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование с таким ID не существует
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidTimeRange конец периода календаря раньше начала
	ErrInvalidTimeRange = errors.New("bookings.service: invalid time range")

	// ErrRangeTooLong период календаря длиннее MaxCalendarDays
	ErrRangeTooLong = errors.New("bookings.service: calendar range too long")

	// ErrInternal ошибка репозитория
	ErrInternal = errors.New("bookings.service: internal error")
)
