package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	"github.com/m04kA/SURA-RentalService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgUnauthorized     = "требуется аутентификация"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет прав на отмену этого бронирования"
	msgCancelPending    = "отмена этого бронирования уже выполняется"
	msgSaveFailed       = "не удалось отменить бронирование"
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

// Handle DELETE /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.bookingService.Cancel(r.Context(), session, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%d - Not found: user=%s", bookingID, session.Email)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/%d - Access denied: user=%s", bookingID, session.Email)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrCancelPending):
			h.logger.Warn("DELETE /bookings/%d - Cancel already pending: user=%s", bookingID, session.Email)
			handlers.RespondConflict(w, msgCancelPending)

		case errors.Is(err, bookings.ErrSaveFailed):
			h.logger.Warn("DELETE /bookings/%d - Save failed: %v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSaveFailed)

		default:
			h.logger.Error("DELETE /bookings/%d - Failed to cancel: user=%s, error=%v", bookingID, session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - Cancelled: user=%s", bookingID, session.Email)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
