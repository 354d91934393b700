package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// ComputeAvailableSlots возвращает часы рабочего окна, которые не заняты.
// Результат отсортирован по возрастанию и никогда не равен nil.
func ComputeAvailableSlots(hours domain.BusinessHours, bookedHours map[int]struct{}) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, hours.Len())

	for hour := hours.Start; hour < hours.End; hour++ {
		if _, booked := bookedHours[hour]; booked {
			continue
		}
		slots = append(slots, domain.NewTimeSlot(hour))
	}

	return slots
}

// bookedHours собирает часы, занятые активными бронированиями, в таймзоне loc
func bookedHours(bookings []*domain.Booking, loc *time.Location) map[int]struct{} {
	hours := make(map[int]struct{}, len(bookings))

	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}
		hours[booking.PickupHour(loc)] = struct{}{}
	}

	return hours
}
