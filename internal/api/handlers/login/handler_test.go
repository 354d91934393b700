package login

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/service/auth"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAuth struct {
	session *domain.Session
	err     error
}

func (f fakeAuth) Login(context.Context, string, string) (*domain.Session, error) {
	return f.session, f.err
}

type fakeCookies struct {
	token uuid.UUID
	set   bool
}

func (f *fakeCookies) Set(_ http.ResponseWriter, token uuid.UUID, _ time.Time) error {
	f.token = token
	f.set = true
	return nil
}

func do(a AuthService, cookies *fakeCookies, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(a, cookies, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(body)))
	return rec
}

func TestHandler_Success(t *testing.T) {
	token := uuid.New()
	cookies := &fakeCookies{}
	session := &domain.Session{Token: token, Username: "admin", ExpiresAt: time.Now().Add(time.Hour)}

	rec := do(fakeAuth{session: session}, cookies, `{"username":"admin","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.True(t, cookies.set)
	assert.Equal(t, token, cookies.token)
}

func TestHandler_Failures(t *testing.T) {
	tests := []struct {
		name   string
		auth   fakeAuth
		body   string
		status int
	}{
		{"bad credentials", fakeAuth{err: auth.ErrInvalidCredentials}, `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"empty password", fakeAuth{}, `{"username":"admin","password":""}`, http.StatusUnauthorized},
		{"malformed body", fakeAuth{}, `not json`, http.StatusBadRequest},
		{"storage failure", fakeAuth{err: errors.New("db down")}, `{"username":"admin","password":"secret123"}`, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookies := &fakeCookies{}
			rec := do(tt.auth, cookies, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, cookies.set)
		})
	}
}
