package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PickupService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	holidays     HolidaySource
	policy       *domain.BookingPolicy
	txManager    TransactionManager
	notifier     Notifier
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier и metrics могут быть nil.
func NewUseCase(
	bookingRepo BookingRepository,
	holidays HolidaySource,
	policy *domain.BookingPolicy,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		holidays:     holidays,
		policy:       policy,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка занятости часа и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.observe(OutcomeInvalid)
		return nil, err
	}

	pickupAt := req.PickupAt.In(uc.policy.Location)
	uc.logger.Info("CreateBooking: order=%s, pickup=%s", req.OrderNumber, pickupAt.Format("2006-01-02 15:04"))

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем праздники на день выдачи
	day := uc.policy.DayStart(pickupAt)
	holidays, err := uc.holidays.Holidays(ctx, day, day)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load holidays for %s: %v", day.Format(domain.DateFormat), err)
		uc.observe(OutcomeFailed)
		return nil, fmt.Errorf("%w: Execute - load holidays: %v", ErrInternal, err)
	}

	// 4. Проверяем окно бронирования
	if err := uc.policy.Validate(pickupAt, holidays, now); err != nil {
		uc.logger.Warn("CreateBooking: pickup %s rejected: %v", pickupAt.Format("2006-01-02 15:04"), err)
		uc.observe(OutcomeRejected)
		return nil, err
	}

	var result *domain.Booking

	// 5. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetByDate(txCtx, day)
		if err != nil {
			return fmt.Errorf("%w: Execute - get bookings: %v", ErrInternal, err)
		}

		for _, b := range bookings {
			if b.IsActive() && b.PickupAt.Equal(pickupAt) {
				return fmt.Errorf("%w: booking id=%s holds %s", ErrSlotNotAvailable, b.ID, pickupAt.Format("15:04"))
			}
		}

		booking := &domain.Booking{
			Name:        strings.TrimSpace(req.Name),
			Email:       strings.TrimSpace(req.Email),
			Phone:       strings.TrimSpace(req.Phone),
			PickupAt:    pickupAt,
			OrderDate:   req.OrderDate,
			OrderNumber: strings.TrimSpace(req.OrderNumber),
			Status:      domain.StatusConfirmed,
			CreatedAt:   now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			case errors.Is(err, bookingRepo.ErrNoDataReturned):
				return ErrNoDataReturned
			default:
				return fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable), txmanager.IsSerializationFailure(err):
			uc.logger.Warn("CreateBooking: slot %s is taken: %v", pickupAt.Format("2006-01-02 15:04"), err)
			uc.observe(OutcomeConflict)
			if !errors.Is(err, ErrSlotNotAvailable) {
				err = fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			}
			return nil, err
		case errors.Is(err, ErrNoDataReturned):
			uc.logger.Error("CreateBooking: insert wrote no rows for order=%s", req.OrderNumber)
			uc.observe(OutcomeFailed)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			uc.observe(OutcomeFailed)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			uc.observe(OutcomeFailed)
			return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	uc.observe(OutcomeCreated)

	// 6. Уведомляем сотрудников, ошибка только логируется
	if uc.notifier != nil {
		if err := uc.notifier.BookingCreated(ctx, result); err != nil {
			uc.logger.Error("CreateBooking: failed to notify about booking id=%s: %v", result.ID, err)
		}
	}

	return &Response{Booking: result}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(outcome)
	}
}
