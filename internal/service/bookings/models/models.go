package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Date        string  `json:"date"`       // RFC3339 в бизнес-таймзоне
	PickupDate  string  `json:"pickupDate"` // "2025-10-15"
	PickupTime  string  `json:"pickupTime"` // "10:00"
	OrderDate   *string `json:"orderDate,omitempty"`
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// CalendarDay бронирования одного календарного дня
type CalendarDay struct {
	Date     string            `json:"date"` // "2025-10-15"
	Weekday  string            `json:"weekday"`
	Bookings []BookingResponse `json:"bookings"`
}

// CalendarResponse бронирования за период, сгруппированные по дням
type CalendarResponse struct {
	From  string        `json:"from"`
	To    string        `json:"to"`
	Days  []CalendarDay `json:"days"`
	Total int           `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response, время приводится к loc
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	pickup := b.PickupAt.In(loc)

	resp := &BookingResponse{
		ID:          b.ID.String(),
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Date:        pickup.Format(time.RFC3339),
		PickupDate:  pickup.Format(domain.DateFormat),
		PickupTime:  pickup.Format(domain.TimeFormat),
		OrderNumber: b.OrderNumber,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.In(loc).Format(time.RFC3339),
	}

	if b.OrderDate != nil {
		// Дата заказа хранится как полночь UTC
		orderDate := b.OrderDate.UTC().Format(domain.DateFormat)
		resp.OrderDate = &orderDate
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) *BookingListResponse {
	list := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		list = append(list, *FromDomainBooking(b, loc))
	}

	return &BookingListResponse{
		Bookings: list,
		Total:    len(list),
	}
}

// DefaultCalendarDays длина периода календаря, если конец не указан
const DefaultCalendarDays = 30

// ParseCalendarRange разбирает параметры from/to (YYYY-MM-DD в loc).
// Пустой from означает сегодня, пустой to означает from + DefaultCalendarDays.
func ParseCalendarRange(fromStr, toStr string, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	local := now.In(loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	if fromStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, fromStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from: %w", err)
		}
		from = parsed
	}

	to := from.AddDate(0, 0, DefaultCalendarDays)
	if toStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, toStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to: %w", err)
		}
		to = parsed
	}

	return from, to, nil
}
