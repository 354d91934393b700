package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// UseCase use case для получения доступных слотов выдачи на день
type UseCase struct {
	bookingRepo BookingRepository
	policy      *domain.BookingPolicy
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policy *domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		policy:      policy,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Одно чтение из репозитория, без побочных эффектов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	day := uc.policy.DayStart(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", day.Format(domain.DateFormat))

	// 2. Получаем бронирования на день
	bookings, err := uc.bookingRepo.GetByDate(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Вычисляем свободные слоты
	slots := ComputeAvailableSlots(uc.policy.BusinessHours, bookedHours(bookings, uc.policy.Location))

	uc.logger.Info("GetAvailableSlots: date=%s, booked=%d, available=%d",
		day.Format(domain.DateFormat), len(bookings), len(slots))

	return &Response{
		Date:          day,
		Slots:         slots,
		BusinessHours: uc.policy.BusinessHours,
	}, nil
}
