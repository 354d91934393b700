package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Любой момент нужного дня, день определяется в бизнес-таймзоне
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date          time.Time         // Полночь запрошенного дня в бизнес-таймзоне
	Slots         []domain.TimeSlot // Свободные слоты по возрастанию часа
	BusinessHours domain.BusinessHours
}
