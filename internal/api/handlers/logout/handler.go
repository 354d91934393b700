package logout

import (
	"net/http"

	"github.com/m04kA/SMC-PickupService/internal/api/handlers"
)

type successResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	auth    AuthService
	cookies SessionCookies
	logger  Logger
}

func NewHandler(authService AuthService, cookies SessionCookies, logger Logger) *Handler {
	return &Handler{
		auth:    authService,
		cookies: cookies,
		logger:  logger,
	}
}

// Handle POST /api/v1/logout
// Без cookie запрос тоже успешен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if token, ok := h.cookies.Token(r); ok {
		if err := h.auth.Logout(r.Context(), token); err != nil {
			h.logger.Error("POST /logout - Failed to revoke session: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.cookies.Clear(w)

	h.logger.Info("POST /logout - Session closed")
	handlers.RespondJSON(w, http.StatusOK, successResponse{Success: true})
}
