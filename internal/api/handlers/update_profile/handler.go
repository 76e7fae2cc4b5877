package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	"github.com/m04kA/SURA-RentalService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgProfileUpdated     = "профиль обновлен"
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

// Handle PUT /api/v1/auth/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /auth/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /auth/profile - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	password := ""
	if req.Password != nil {
		password = *req.Password
	}

	err := h.authService.UpdateProfile(r.Context(), session, password, req.Metadata)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("PUT /auth/profile - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, auth.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("PUT /auth/profile - Failed: email=%s, error=%v", session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /auth/profile - Updated: email=%s", session.Email)
	handlers.RespondJSON(w, http.StatusOK, UpdateProfileResponse{Message: msgProfileUpdated})
}
