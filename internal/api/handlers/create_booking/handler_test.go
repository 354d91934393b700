package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickupService/internal/api/handlers"
	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-PickupService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validBody = `{
	"name": "Hanako Yamada",
	"email": "hanako@example.com",
	"phone": "090-1234-5678",
	"date": "2025-11-13T10:00:00+09:00",
	"orderDate": "2025-10-30",
	"orderNumber": "ORD-1001"
}`

func do(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	h := NewHandler(uc, tokyo, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandler_Created(t *testing.T) {
	id := uuid.New()
	orderDate := time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{Booking: &domain.Booking{
		ID:          id,
		Name:        "Hanako Yamada",
		Email:       "hanako@example.com",
		Phone:       "090-1234-5678",
		PickupAt:    time.Date(2025, 11, 13, 1, 0, 0, 0, time.UTC),
		OrderDate:   &orderDate,
		OrderNumber: "ORD-1001",
		Status:      domain.StatusConfirmed,
		CreatedAt:   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
	}}}

	rec := do(t, uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.True(t, uc.got.PickupAt.Equal(time.Date(2025, 11, 13, 1, 0, 0, 0, time.UTC)))
	require.NotNil(t, uc.got.OrderDate)
	assert.Equal(t, orderDate, *uc.got.OrderDate)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, "2025-11-13", body.PickupDate)
	assert.Equal(t, "10:00", body.PickupTime)
	require.NotNil(t, body.OrderDate)
	assert.Equal(t, "2025-10-30", *body.OrderDate)
}

func TestHandler_LocalDateTimeReadInBusinessZone(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{Booking: &domain.Booking{
		ID:       uuid.New(),
		PickupAt: time.Date(2025, 11, 13, 1, 0, 0, 0, time.UTC),
		Status:   domain.StatusConfirmed,
	}}}
	body := strings.Replace(validBody, "2025-11-13T10:00:00+09:00", "2025-11-13T10:00:00", 1)

	rec := do(t, uc, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NotNil(t, uc.got)
	assert.True(t, uc.got.PickupAt.Equal(time.Date(2025, 11, 13, 1, 0, 0, 0, time.UTC)), uc.got.PickupAt)
}

func TestParsePickupAt(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	want := time.Date(2025, 11, 13, 1, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"rfc3339 with offset", "2025-11-13T10:00:00+09:00", false},
		{"rfc3339 utc", "2025-11-13T01:00:00Z", false},
		{"local date-time", "2025-11-13T10:00:00", false},
		{"date only", "2025-11-13", true},
		{"garbage", "tomorrow", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePickupAt(tt.in, tokyo)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(want), got)
		})
	}
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"malformed json", `{"name":`},
		{"missing fields", `{"name":"a"}`},
		{"bad date", strings.Replace(validBody, "2025-11-13T10:00:00+09:00", "13/11/2025", 1)},
		{"bad order date", strings.Replace(validBody, `"2025-10-30"`, `"yesterday"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := do(t, uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantDetail string
	}{
		{
			name:       "too soon",
			err:        fmt.Errorf("%w: pickup must be at least 5 days from now", domain.ErrTooSoon),
			wantStatus: http.StatusBadRequest,
			wantError:  "too soon",
			wantDetail: "too soon: pickup must be at least 5 days from now",
		},
		{
			name:       "holiday",
			err:        fmt.Errorf("%w: 2025-11-24", domain.ErrHoliday),
			wantStatus: http.StatusBadRequest,
			wantError:  "holiday",
			wantDetail: "holiday: 2025-11-24",
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: phone is required", createBooking.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidInput,
			wantDetail: "create_booking: invalid input data: phone is required",
		},
		{
			name:       "slot taken",
			err:        createBooking.ErrSlotNotAvailable,
			wantStatus: http.StatusConflict,
			wantError:  msgSlotNotAvailable,
		},
		{
			name:       "no data returned",
			err:        createBooking.ErrNoDataReturned,
			wantStatus: http.StatusInternalServerError,
			wantError:  msgCreateFailed,
			wantDetail: "no data returned",
		},
		{
			name:       "internal",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  msgCreateFailed,
			wantDetail: msgInternalDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, &fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantDetail, body.Details)
		})
	}
}
