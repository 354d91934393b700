package pages

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
)

// BookingService чтение бронирований для страниц администратора
type BookingService interface {
	ListAll(ctx context.Context) (*models.BookingListResponse, error)
	Calendar(ctx context.Context, from, to time.Time) (*models.CalendarResponse, error)
}

// AuthService вход и выход администратора
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context, token uuid.UUID) error
}

// SessionCookies хранилище токена сессии
type SessionCookies interface {
	Set(w http.ResponseWriter, token uuid.UUID, expiresAt time.Time) error
	Token(r *http.Request) (uuid.UUID, bool)
	Clear(w http.ResponseWriter)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
