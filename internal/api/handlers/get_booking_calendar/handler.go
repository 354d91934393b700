package get_booking_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/api/handlers"
	"github.com/m04kA/SMC-PickupService/internal/service/bookings"
	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
)

const (
	msgInvalidParams = "invalid query parameters, expected from/to as YYYY-MM-DD"
	msgInvalidRange  = "to must not be before from"
)

type Handler struct {
	service  BookingService
	location *time.Location
	now      func() time.Time
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/calendar
// Query params: from, to (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, to, err := models.ParseCalendarRange(
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
		h.now(),
		h.location,
	)
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.Calendar(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidTimeRange), errors.Is(err, bookings.ErrRangeTooLong):
			h.logger.Warn("GET /admin/calendar - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/calendar - Calendar retrieved successfully: from=%s, to=%s, count=%d",
		result.From, result.To, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
