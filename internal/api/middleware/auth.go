package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickupService/internal/api/handlers"
	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/service/auth"
)

const (
	// AdminPrefix HTML страницы администратора
	AdminPrefix = "/admin"
	// LoginPath страница входа
	LoginPath = "/admin/login"

	msgUnauthorized = "authentication required"
)

// Decision результат проверки доступа к странице
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToAdmin
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToAdmin:
		return "redirect-to-admin"
	default:
		return "unknown"
	}
}

// Authenticator проверяет токен сессии на сервере
type Authenticator interface {
	Authenticate(ctx context.Context, token uuid.UUID) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type sessionKey struct{}

// WithSession кладёт сессию администратора в контекст
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession достаёт сессию администратора из контекста
func GetSession(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return session, ok && session != nil
}

// Gate пропускает к разделу администратора только с действующей сессией
type Gate struct {
	cookies *SessionCookie
	auth    Authenticator
	logger  Logger
}

// NewGate создает Gate
func NewGate(cookies *SessionCookie, authenticator Authenticator, logger Logger) *Gate {
	return &Gate{
		cookies: cookies,
		auth:    authenticator,
		logger:  logger,
	}
}

// Authorize решает, что делать с запросом к HTML страницам.
// Сессия возвращается, если она действительна.
func (g *Gate) Authorize(r *http.Request) (Decision, *domain.Session) {
	path := r.URL.Path
	if !isAdminPath(path) {
		return Allow, nil
	}

	session := g.session(r)

	if path == LoginPath {
		if session != nil {
			return RedirectToAdmin, session
		}
		return Allow, nil
	}

	if session == nil {
		return RedirectToLogin, nil
	}
	return Allow, session
}

// SessionGate middleware для HTML страниц: редиректит вместо 401
func (g *Gate) SessionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision, session := g.Authorize(r)

		switch decision {
		case RedirectToLogin:
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		case RedirectToAdmin:
			http.Redirect(w, r, AdminPrefix, http.StatusSeeOther)
		default:
			if session != nil {
				r = r.WithContext(WithSession(r.Context(), session))
			}
			next.ServeHTTP(w, r)
		}
	})
}

// RequireSession middleware для JSON API администратора: отвечает 401
func (g *Gate) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := g.session(r)
		if session == nil {
			g.logger.Warn("%s %s - Unauthorized", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// session возвращает действующую сессию или nil
func (g *Gate) session(r *http.Request) *domain.Session {
	token, ok := g.cookies.Token(r)
	if !ok {
		return nil
	}

	session, err := g.auth.Authenticate(r.Context(), token)
	if err != nil {
		if !errors.Is(err, auth.ErrSessionInvalid) {
			g.logger.Error("SessionGate: failed to verify session: %v", err)
		}
		return nil
	}

	return session
}

func isAdminPath(path string) bool {
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}
