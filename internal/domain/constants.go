package domain

// Default configuration values
const (
	DefaultBusinessStartHour = 9
	DefaultBusinessEndHour   = 18 // exclusive: 17:00 is the last slot
	DefaultMinLeadDays       = 5
	DefaultMaxLeadDays       = 30
	DefaultTimezone          = "Asia/Tokyo"
)

// Business validation constants
const (
	MaxNameLength        = 100
	MaxEmailLength       = 254
	MaxPhoneLength       = 32
	MaxOrderNumberLength = 64
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses do not hold a slot
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses hold a slot
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
