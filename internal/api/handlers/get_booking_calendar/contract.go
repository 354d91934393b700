package get_booking_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
)

type BookingService interface {
	Calendar(ctx context.Context, from, to time.Time) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
