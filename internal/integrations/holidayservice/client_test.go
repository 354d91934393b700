package holidayservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetHolidays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/PublicHolidays/2025/JP", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date":"2025-01-01","localName":"元日","name":"New Year's Day","countryCode":"JP","global":true,"types":["Public"]},
			{"date":"2025-11-03","localName":"文化の日","name":"Culture Day","countryCode":"JP","global":true,"types":["Public"]}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v3/PublicHolidays/", "JP", time.Second, nopLogger{})

	holidays, err := client.GetHolidays(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2025-11-03", holidays[1].Date)
	assert.Equal(t, "Culture Day", holidays[1].Name)
}

func TestClient_GetHolidays_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unknown country", http.StatusNotFound, "", ErrCountryNotSupported},
		{"server error", http.StatusInternalServerError, "oops", ErrInvalidResponse},
		{"bad json", http.StatusOK, "{not json", ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "XX", time.Second, nopLogger{})
			_, err := client.GetHolidays(context.Background(), 2025)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetHolidays_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, "JP", 100*time.Millisecond, nopLogger{})
	_, err := client.GetHolidays(context.Background(), 2025)
	assert.ErrorIs(t, err, ErrInternal)
}
