package login

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
}

type SessionCookies interface {
	Set(w http.ResponseWriter, token uuid.UUID, expiresAt time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
