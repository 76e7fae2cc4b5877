package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	createBooking "github.com/m04kA/SURA-RentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized       = "требуется аутентификация"
	msgCarNotFound        = "автомобиль не найден"
	msgCarUnavailable     = "автомобиль недоступен для аренды"
	msgInvalidDateRange   = "дата возврата должна быть позже даты получения"
	msgDateInPast         = "дата получения уже прошла"
	msgSaveFailed         = "не удалось сохранить бронирование"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, createBooking.ErrCarNotFound):
			h.logger.Warn("POST /bookings - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createBooking.ErrCarUnavailable):
			h.logger.Warn("POST /bookings - Car unavailable: car_id=%d", req.CarID)
			handlers.RespondError(w, http.StatusConflict, msgCarUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user=%s, car_id=%d", session.Email, req.CarID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Start date in past: user=%s, car_id=%d", session.Email, req.CarID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrSaveFailed):
			h.logger.Warn("POST /bookings - Save failed: user=%s, car_id=%d, error=%v", session.Email, req.CarID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSaveFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, car_id=%d, error=%v",
				session.Email, req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user=%s, total=%.2f",
		result.ID, session.Email, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
