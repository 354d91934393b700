package get_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	resp *models.BookingListResponse
	err  error
}

func (f fakeService) ListAll(context.Context) (*models.BookingListResponse, error) {
	return f.resp, f.err
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakeService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{}, Total: 0}}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[],"total":0}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(fakeService{err: errors.New("boom")}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
