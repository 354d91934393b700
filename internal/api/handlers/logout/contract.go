package logout

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type AuthService interface {
	Logout(ctx context.Context, token uuid.UUID) error
}

type SessionCookies interface {
	Token(r *http.Request) (uuid.UUID, bool)
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
