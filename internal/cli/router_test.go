package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickupService/internal/config"
	adminUserRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/adminuser"
	sessionRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/session"
	"github.com/m04kA/SMC-PickupService/internal/infra/storage/testutil"
	authService "github.com/m04kA/SMC-PickupService/internal/service/auth"
	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
	"github.com/m04kA/SMC-PickupService/pkg/logger"
	"github.com/m04kA/SMC-PickupService/pkg/metrics"
)

type testApp struct {
	router http.Handler
	cfg    *config.Config
	loc    *time.Location
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = ":memory:"
	cfg.Metrics.Enabled = true

	db := testutil.SetupTestDB(t)
	log := logger.NewNop()

	svc := authService.NewService(adminUserRepo.NewRepository(db), sessionRepo.NewRepository(db), cfg.Session.TTL(), log)
	_, err := svc.CreateAdmin(context.Background(), "admin", "correct-horse")
	require.NoError(t, err)

	stopCh := make(chan struct{})
	t.Cleanup(func() { close(stopCh) })

	router, err := buildRouter(deps{
		cfg:     cfg,
		db:      db,
		log:     log,
		metrics: metrics.New("pickup_test"),
		stopCh:  stopCh,
	})
	require.NoError(t, err)

	loc, err := cfg.Location()
	require.NoError(t, err)

	return &testApp{router: router, cfg: cfg, loc: loc}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// bookableSlot возвращает 10:00 ближайшего рабочего дня не раньше чем через 10 дней
func (a *testApp) bookableSlot() time.Time {
	day := time.Now().In(a.loc).AddDate(0, 0, 10)
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, a.loc)
}

func bookingBody(at time.Time) string {
	return fmt.Sprintf(`{
		"name": "Taro Yamada",
		"email": "taro@example.com",
		"phone": "090-1111-2222",
		"date": %q,
		"orderNumber": "ORD-42"
	}`, at.Format(time.RFC3339))
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rec.Body.String())
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	app := newTestApp(t)

	app.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	rec := app.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pickup_test")
}

func TestRouter_BookingPolicy(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/booking-policy", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Asia/Tokyo", body["timezone"])
}

func TestRouter_CreateBookingAndConflict(t *testing.T) {
	app := newTestApp(t)
	slot := app.bookableSlot()

	first := app.do(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(bookingBody(slot))))
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := app.do(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(bookingBody(slot))))
	assert.Equal(t, http.StatusConflict, second.Code)

	date := slot.Format("2006-01-02")
	slots := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/bookings/available-slots?date="+date, nil))
	require.Equal(t, http.StatusOK, slots.Code)

	var resp struct {
		AvailableTimeSlots []struct {
			Hour int    `json:"hour"`
			Time string `json:"time"`
		} `json:"availableTimeSlots"`
	}
	require.NoError(t, json.Unmarshal(slots.Body.Bytes(), &resp))
	assert.Len(t, resp.AvailableTimeSlots, 8)
	for _, s := range resp.AvailableTimeSlots {
		assert.NotEqual(t, 10, s.Hour)
	}
}

func TestRouter_CreateBookingRejectsWeekend(t *testing.T) {
	app := newTestApp(t)
	slot := app.bookableSlot()
	for slot.Weekday() != time.Saturday {
		slot = slot.AddDate(0, 0, 1)
	}

	rec := app.do(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(bookingBody(slot))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_AdminAPIRequiresSession(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AdminPagesRedirectToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/admin", "/admin/calendar"} {
		rec := app.do(httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}

	rec := app.do(httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LoginThenListBookings(t *testing.T) {
	app := newTestApp(t)

	created := app.do(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(bookingBody(app.bookableSlot()))))
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	bad := app.do(httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"username":"admin","password":"wrong-password"}`)))
	assert.Equal(t, http.StatusUnauthorized, bad.Code)

	login := app.do(httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"username":"admin","password":"correct-horse"}`)))
	require.Equal(t, http.StatusOK, login.Code)

	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := app.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "ORD-42", list.Bookings[0].OrderNumber)

	// Авторизованный администратор на странице входа уходит в дашборд
	page := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	for _, c := range cookies {
		page.AddCookie(c)
	}
	redirect := app.do(page)
	assert.Equal(t, http.StatusSeeOther, redirect.Code)
	assert.Equal(t, "/admin", redirect.Header().Get("Location"))
}
