package get_booking_policy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// HolidaySource интерфейс источника праздничных дней
type HolidaySource interface {
	Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error)
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
