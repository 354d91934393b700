package holidayservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для сервиса праздничных дней
type Client struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, countryCode string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		countryCode: countryCode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHolidays получает государственные праздники за год
func (c *Client) GetHolidays(ctx context.Context, year int) ([]Holiday, error) {
	url := fmt.Sprintf("%s/%d/%s", c.baseURL, year, c.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrCountryNotSupported, c.countryCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched %d holidays for year=%d country=%s", len(holidays), year, c.countryCode)
	return holidays, nil
}
