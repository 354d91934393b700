package holidays

import (
	"context"

	"github.com/m04kA/SMC-PickupService/internal/integrations/holidayservice"
)

// HolidayClient интерфейс клиента внешнего календаря праздников
type HolidayClient interface {
	GetHolidays(ctx context.Context, year int) ([]holidayservice.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
