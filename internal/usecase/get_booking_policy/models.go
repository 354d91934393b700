package get_booking_policy

import (
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// Response описывает, какие даты клиент может выбрать прямо сейчас
type Response struct {
	BusinessHours  domain.BusinessHours
	MinLeadDays    int
	MaxLeadDays    int
	Timezone       string
	EarliestPickup time.Time        // Первый допустимый момент выдачи
	LatestPickup   time.Time        // Последний допустимый момент выдачи
	Holidays       []domain.Holiday // Праздники внутри окна бронирования
}
