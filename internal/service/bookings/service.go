package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
)

// Service сервис просмотра бронирований для администратора
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		location:    location,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.location), nil
}

// ListAll получает все бронирования, новые первыми
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.location), nil
}

// MaxCalendarDays максимальная длина периода календаря
const MaxCalendarDays = 92

// Calendar получает активные бронирования с датой выдачи в [from, to] (по календарным дням),
// сгруппированные по дням. Дни без бронирований не попадают в ответ.
func (s *Service) Calendar(ctx context.Context, from, to time.Time) (*models.CalendarResponse, error) {
	fromDay := dayStart(from, s.location)
	toDay := dayStart(to, s.location)

	if toDay.Before(fromDay) {
		return nil, fmt.Errorf("%w: from=%s to=%s", ErrInvalidTimeRange,
			fromDay.Format(domain.DateFormat), toDay.Format(domain.DateFormat))
	}

	if toDay.After(fromDay.AddDate(0, 0, MaxCalendarDays)) {
		return nil, fmt.Errorf("%w: from=%s to=%s, max %d days", ErrRangeTooLong,
			fromDay.Format(domain.DateFormat), toDay.Format(domain.DateFormat), MaxCalendarDays)
	}

	s.logger.Info("Calendar: fetching bookings from %s to %s",
		fromDay.Format(domain.DateFormat), toDay.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetByPeriod(ctx, domain.BookingsPeriodFilter{
		From: fromDay,
		To:   toDay.AddDate(0, 0, 1),
	})
	if err != nil {
		s.logger.Error("Calendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: Calendar - repository error: %v", ErrInternal, err)
	}

	return &models.CalendarResponse{
		From:  fromDay.Format(domain.DateFormat),
		To:    toDay.Format(domain.DateFormat),
		Days:  groupByDay(bookings, s.location),
		Total: len(bookings),
	}, nil
}

// groupByDay группирует бронирования по дню выдачи
// Ожидает бронирования, отсортированные по pickup_at
func groupByDay(bookings []*domain.Booking, loc *time.Location) []models.CalendarDay {
	days := make([]models.CalendarDay, 0)

	for _, b := range bookings {
		pickup := b.PickupAt.In(loc)
		key := pickup.Format(domain.DateFormat)

		if len(days) == 0 || days[len(days)-1].Date != key {
			days = append(days, models.CalendarDay{
				Date:     key,
				Weekday:  pickup.Weekday().String(),
				Bookings: make([]models.BookingResponse, 0),
			})
		}

		last := &days[len(days)-1]
		last.Bookings = append(last.Bookings, *models.FromDomainBooking(b, loc))
	}

	return days
}

func dayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
