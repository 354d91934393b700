package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-PickupService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date               string                `json:"date"`
	AvailableTimeSlots []AvailableSlot       `json:"availableTimeSlots"`
	BusinessHours      BusinessHoursResponse `json:"businessHours"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Hour int    `json:"hour"`
	Time string `json:"time"`
}

// BusinessHoursResponse рабочие часы, end не включается
type BusinessHoursResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Hour: slot.Hour,
			Time: slot.Time,
		}
	}

	return &AvailableSlotsResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		AvailableTimeSlots: slots,
		BusinessHours: BusinessHoursResponse{
			Start: resp.BusinessHours.Start,
			End:   resp.BusinessHours.End,
		},
	}
}

// ToUseCaseRequest создает запрос use case из query параметра date.
// Принимается YYYY-MM-DD (день в бизнес-таймзоне) или RFC3339.
func ToUseCaseRequest(dateStr string, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		var rfcErr error
		date, rfcErr = time.Parse(time.RFC3339, dateStr)
		if rfcErr != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		Date: date,
	}, nil
}
