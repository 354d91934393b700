package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/service/auth"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAuth struct {
	sessions map[uuid.UUID]*domain.Session
	err      error
}

func (f *fakeAuth) Authenticate(_ context.Context, token uuid.UUID) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[token]
	if !ok {
		return nil, auth.ErrSessionInvalid
	}
	return s, nil
}

func newGate(t *testing.T) (*Gate, *SessionCookie, uuid.UUID) {
	t.Helper()
	cookies := NewSessionCookie("test_session", nil, nil, false)
	token := uuid.New()
	fa := &fakeAuth{sessions: map[uuid.UUID]*domain.Session{
		token: {Token: token, AdminUserID: 1, Username: "admin", ExpiresAt: time.Now().Add(time.Hour)},
	}}
	return NewGate(cookies, fa, nopLogger{}), cookies, token
}

// withCookie выставляет cookie так, как это сделал бы браузер
func withCookie(t *testing.T, cookies *SessionCookie, r *http.Request, token uuid.UUID) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, cookies.Set(rec, token, time.Now().Add(time.Hour)))
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestGate_Authorize(t *testing.T) {
	gate, cookies, token := newGate(t)

	tests := []struct {
		name     string
		path     string
		token    *uuid.UUID
		decision Decision
	}{
		{"public page", "/", nil, Allow},
		{"public api", "/api/v1/bookings/available-slots", nil, Allow},
		{"lookalike prefix", "/administrator", nil, Allow},
		{"admin without session", "/admin", nil, RedirectToLogin},
		{"nested admin without session", "/admin/calendar", nil, RedirectToLogin},
		{"login without session", "/admin/login", nil, Allow},
		{"admin with session", "/admin", &token, Allow},
		{"nested admin with session", "/admin/calendar", &token, Allow},
		{"login with session", "/admin/login", &token, RedirectToAdmin},
		{"admin with unknown token", "/admin", ptr(uuid.New()), RedirectToLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != nil {
				r = withCookie(t, cookies, r, *tt.token)
			}

			decision, _ := gate.Authorize(r)
			assert.Equal(t, tt.decision, decision, decision.String())
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestGate_Authorize_ForgedCookie(t *testing.T) {
	gate, _, token := newGate(t)
	other := NewSessionCookie("test_session", nil, nil, false)

	r := withCookie(t, other, httptest.NewRequest(http.MethodGet, "/admin", nil), token)

	decision, session := gate.Authorize(r)
	assert.Equal(t, RedirectToLogin, decision)
	assert.Nil(t, session)
}

func TestGate_SessionGate(t *testing.T) {
	gate, cookies, token := newGate(t)

	var seen *domain.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetSession(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := gate.SessionGate(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withCookie(t, cookies, httptest.NewRequest(http.MethodGet, LoginPath, nil), token))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, AdminPrefix, rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withCookie(t, cookies, httptest.NewRequest(http.MethodGet, "/admin", nil), token))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "admin", seen.Username)
}

func TestGate_RequireSession(t *testing.T) {
	gate, cookies, token := newGate(t)

	called := false
	h := gate.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := GetSession(r.Context())
		assert.True(t, ok)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())
	assert.False(t, called)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withCookie(t, cookies, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil), token))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestGate_AuthenticatorFailureDenies(t *testing.T) {
	cookies := NewSessionCookie("test_session", nil, nil, false)
	gate := NewGate(cookies, &fakeAuth{err: errors.New("db down")}, nopLogger{})

	r := withCookie(t, cookies, httptest.NewRequest(http.MethodGet, "/admin", nil), uuid.New())

	decision, _ := gate.Authorize(r)
	assert.Equal(t, RedirectToLogin, decision)
}

func TestSessionCookie_Clear(t *testing.T) {
	cookies := NewSessionCookie("test_session", nil, nil, true)

	rec := httptest.NewRecorder()
	cookies.Clear(rec)

	result := rec.Result().Cookies()
	require.Len(t, result, 1)
	assert.Equal(t, "test_session", result[0].Name)
	assert.True(t, result[0].MaxAge < 0)
	assert.True(t, result[0].Secure)
	assert.True(t, result[0].HttpOnly)
}
