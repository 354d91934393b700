package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	createBooking "github.com/m04kA/SMC-PickupService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// date: "2025-11-13T10:00:00+09:00" или "2025-11-13T10:00:00" (бизнес-таймзона), orderDate: "2025-10-30"
type CreateBookingRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,max=254"`
	Phone       string  `json:"phone" validate:"required,max=32"`
	Date        string  `json:"date" validate:"required"`
	OrderDate   *string `json:"orderDate,omitempty"`
	OrderNumber string  `json:"orderNumber" validate:"required,max=64"`
}

// localDateTimeFormat дата-время без смещения
const localDateTimeFormat = "2006-01-02T15:04:05"

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// date без смещения читается в loc
func (r *CreateBookingRequest) ToUseCaseRequest(loc *time.Location) (*createBooking.Request, error) {
	pickupAt, err := parsePickupAt(r.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	req := &createBooking.Request{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		PickupAt:    pickupAt,
		OrderNumber: r.OrderNumber,
	}

	if r.OrderDate != nil && *r.OrderDate != "" {
		orderDate, err := parseOrderDate(*r.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("orderDate: %w", err)
		}
		req.OrderDate = &orderDate
	}

	return req, nil
}

// parsePickupAt принимает RFC3339 или локальное дата-время в loc
func parsePickupAt(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localDateTimeFormat, s, loc)
}

// parseOrderDate принимает YYYY-MM-DD или RFC3339 и возвращает полночь UTC этого дня
func parseOrderDate(s string) (time.Time, error) {
	if d, err := time.Parse(domain.DateFormat, s); err == nil {
		return d, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
