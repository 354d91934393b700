package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByPeriod(ctx context.Context, filter domain.BookingsPeriodFilter) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
