package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/api/handlers"
	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-PickupService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
	msgInvalidDate        = "invalid date, expected an ISO-8601 date-time"
	msgInvalidInput       = "invalid input"
	msgSlotNotAvailable   = "time slot is no longer available"
	msgCreateFailed       = "failed to create booking"
	msgInternalDetails    = "internal error"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgValidationFailed, handlers.ValidationDetails(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidDate, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if reason, ok := domain.RejectionReason(err); ok {
			h.logger.Warn("POST /bookings - Pickup rejected: order=%s, reason=%s", req.OrderNumber, reason)
			handlers.RespondErrorDetails(w, http.StatusBadRequest, reason, err.Error())
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidInput, err.Error())

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: order=%s, date=%s", req.OrderNumber, req.Date)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrNoDataReturned):
			h.logger.Error("POST /bookings - No data returned: order=%s", req.OrderNumber)
			handlers.RespondErrorDetails(w, http.StatusInternalServerError, msgCreateFailed, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: order=%s, error=%v", req.OrderNumber, err)
			handlers.RespondErrorDetails(w, http.StatusInternalServerError, msgCreateFailed, msgInternalDetails)
		}
		return
	}

	response := models.FromDomainBooking(result.Booking, h.location)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, order=%s",
		response.ID, response.OrderNumber)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
