package get_booking_policy

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// UseCase отдаёт параметры окна бронирования для выбора даты на клиенте
type UseCase struct {
	holidays     HolidaySource
	policy       *domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(holidays HolidaySource, policy *domain.BookingPolicy, logger Logger) *UseCase {
	return &UseCase{
		holidays:     holidays,
		policy:       policy,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает текущее окно бронирования
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	earliest := uc.policy.EarliestPickup(now)
	latest := uc.policy.LatestPickup(now)

	holidays, err := uc.holidays.Holidays(ctx, uc.policy.DayStart(earliest), latest)
	if err != nil {
		uc.logger.Error("GetBookingPolicy: failed to load holidays: %v", err)
		return nil, fmt.Errorf("%w: Execute - load holidays: %v", ErrInternal, err)
	}

	return &Response{
		BusinessHours:  uc.policy.BusinessHours,
		MinLeadDays:    uc.policy.MinLeadDays,
		MaxLeadDays:    uc.policy.MaxLeadDays,
		Timezone:       uc.policy.Location.String(),
		EarliestPickup: earliest,
		LatestPickup:   latest,
		Holidays:       holidays,
	}, nil
}
