package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"name", req.Name, domain.MaxNameLength},
		{"email", req.Email, domain.MaxEmailLength},
		{"phone", req.Phone, domain.MaxPhoneLength},
		{"orderNumber", req.OrderNumber, domain.MaxOrderNumberLength},
	}

	for _, f := range fields {
		value := strings.TrimSpace(f.value)
		if value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
		if utf8.RuneCountInString(value) > f.max {
			return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, f.name, f.max)
		}
	}

	if req.PickupAt.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.OrderDate != nil && req.OrderDate.IsZero() {
		return fmt.Errorf("%w: orderDate is malformed", ErrInvalidInput)
	}

	return nil
}
