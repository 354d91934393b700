package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, dayStart time.Time) ([]*domain.Booking, error)
}

// HolidaySource интерфейс источника праздничных дней
type HolidaySource interface {
	Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error)
}

// Notifier интерфейс уведомления сотрудников о новом бронировании
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking) error
}

// MetricsRecorder интерфейс для учёта исходов бронирования
type MetricsRecorder interface {
	ObserveBooking(outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
