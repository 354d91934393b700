package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PickupService/internal/api/handlers"
	"github.com/m04kA/SMC-PickupService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid username or password"
)

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

// Handle POST /api/v1/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(req); err != nil {
		h.logger.Warn("POST /login - Validation failed: %v", err)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	session, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /login - Failed to log in: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := h.cookies.Set(w, session.Token, session.ExpiresAt); err != nil {
		h.logger.Error("POST /login - Failed to encode session cookie: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /login - Admin logged in: username=%s", session.Username)
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
