package sign_out

import (
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
)

const (
	msgUnauthorized = "требуется аутентификация"
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

// Handle POST /api/v1/auth/sign-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.authService.SignOut(r.Context(), session); err != nil {
		h.logger.Error("POST /auth/sign-out - Failed: email=%s, error=%v", session.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-out - Signed out: email=%s", session.Email)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
