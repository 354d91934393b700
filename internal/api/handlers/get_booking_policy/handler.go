package get_booking_policy

import (
	"net/http"

	"github.com/m04kA/SMC-PickupService/internal/api/handlers"
)

type Handler struct {
	useCase GetBookingPolicyUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingPolicyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /booking-policy - Failed to get policy: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /booking-policy - Policy retrieved successfully: earliest=%s, latest=%s, holidays=%d",
		response.EarliestPickup, response.LatestPickup, len(response.Holidays))
	handlers.RespondJSON(w, http.StatusOK, response)
}
