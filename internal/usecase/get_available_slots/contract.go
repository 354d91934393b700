package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает активные бронирования на календарный день
	GetByDate(ctx context.Context, dayStart time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
