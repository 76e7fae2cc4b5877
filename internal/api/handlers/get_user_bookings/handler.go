package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
)

const (
	msgUnauthorized = "требуется аутентификация"
)

type Handler struct {
	bookingService BookingService
	logger         Logger
}

func NewHandler(bookingService BookingService, logger Logger) *Handler {
	return &Handler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookings, err := h.bookingService.ListMine(r.Context(), session)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: user=%s, error=%v", session.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - %d bookings: user=%s", len(bookings), session.Email)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(bookings))
}
