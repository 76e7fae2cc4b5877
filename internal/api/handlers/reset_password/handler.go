package reset_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRecoverySent       = "если такой email зарегистрирован, письмо для сброса пароля отправлено"
)

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/auth/reset-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/reset-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /auth/reset-password - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/reset-password - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /auth/reset-password - Failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/reset-password - Recovery requested: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, ResetPasswordResponse{Message: msgRecoverySent})
}
