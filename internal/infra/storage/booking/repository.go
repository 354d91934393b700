package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/infra/storage/sqlerr"
	"github.com/m04kA/SMC-PickupService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PickupService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"pickup_at",
	"order_date",
	"order_number",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// ID и CreatedAt заполняются здесь, если не были заданы. Все времена пишутся в UTC.
// Если на это время уже есть активное бронирование, уникальный индекс вернёт ошибку,
// которая превращается в ErrSlotNotAvailable.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	booking.CreatedAt = booking.CreatedAt.UTC()
	booking.PickupAt = booking.PickupAt.UTC()

	var orderDate interface{}
	if booking.OrderDate != nil {
		orderDate = booking.OrderDate.UTC()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.PickupAt,
			orderDate,
			booking.OrderNumber,
			booking.Status,
			booking.CreatedAt,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: pickup_at=%s", ErrSlotNotAvailable, booking.PickupAt.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return nil, ErrNoDataReturned
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByDate получает активные бронирования на календарный день, начинающийся в dayStart
// dayStart должен быть полночью в бизнес-таймзоне. Результат отсортирован по времени выдачи.
func (r *Repository) GetByDate(ctx context.Context, dayStart time.Time) ([]*domain.Booking, error) {
	return r.GetByPeriod(ctx, domain.BookingsPeriodFilter{
		From: dayStart,
		To:   dayStart.AddDate(0, 0, 1),
	})
}

// GetByPeriod получает бронирования с pickup_at в [From, To)
// Отменённые бронирования исключаются, если не указан IncludeInactive
func (r *Repository) GetByPeriod(ctx context.Context, filter domain.BookingsPeriodFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"pickup_at": filter.From.UTC()}).
		Where(squirrel.Lt{"pickup_at": filter.To.UTC()}).
		OrderBy("pickup_at ASC")

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListAll получает все бронирования, новые первыми
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC", "pickup_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var orderDate sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.PickupAt,
		&orderDate,
		&booking.OrderNumber,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if orderDate.Valid {
		booking.OrderDate = &orderDate.Time
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
