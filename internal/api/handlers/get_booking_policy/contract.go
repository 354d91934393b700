package get_booking_policy

import (
	"context"

	getBookingPolicy "github.com/m04kA/SMC-PickupService/internal/usecase/get_booking_policy"
)

type GetBookingPolicyUseCase interface {
	Execute(ctx context.Context) (*getBookingPolicy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
