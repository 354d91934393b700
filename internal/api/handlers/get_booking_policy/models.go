package get_booking_policy

import (
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	getBookingPolicy "github.com/m04kA/SMC-PickupService/internal/usecase/get_booking_policy"
)

// BookingPolicyResponse HTTP response model
type BookingPolicyResponse struct {
	Timezone       string                `json:"timezone"`
	BusinessHours  BusinessHoursResponse `json:"businessHours"`
	MinLeadDays    int                   `json:"minLeadDays"`
	MaxLeadDays    int                   `json:"maxLeadDays"`
	EarliestPickup string                `json:"earliestPickup"` // RFC3339
	LatestPickup   string                `json:"latestPickup"`   // RFC3339
	Holidays       []HolidayResponse     `json:"holidays"`
}

// BusinessHoursResponse рабочие часы, end не включается
type BusinessHoursResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// HolidayResponse праздничный день
type HolidayResponse struct {
	Date string `json:"date"` // "2025-11-24"
	Name string `json:"name,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingPolicy.Response) *BookingPolicyResponse {
	holidays := make([]HolidayResponse, 0, len(resp.Holidays))
	for _, h := range resp.Holidays {
		holidays = append(holidays, HolidayResponse{
			Date: h.Date.Format(domain.DateFormat),
			Name: h.Name,
		})
	}

	return &BookingPolicyResponse{
		Timezone: resp.Timezone,
		BusinessHours: BusinessHoursResponse{
			Start: resp.BusinessHours.Start,
			End:   resp.BusinessHours.End,
		},
		MinLeadDays:    resp.MinLeadDays,
		MaxLeadDays:    resp.MaxLeadDays,
		EarliestPickup: resp.EarliestPickup.Format(time.RFC3339),
		LatestPickup:   resp.LatestPickup.Format(time.RFC3339),
		Holidays:       holidays,
	}
}
