package create_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	"github.com/m04kA/SURA-RentalService/internal/service/fleet"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgAccessDenied       = "операция доступна только администратору"
)

type Handler struct {
	fleetService FleetService
	logger       Logger
}

func NewHandler(fleetService FleetService, logger Logger) *Handler {
	return &Handler{
		fleetService: fleetService,
		logger:       logger,
	}
}

// Handle POST /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /cars - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.fleetService.CreateCar(r.Context(), session, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrAccessDenied):
			h.logger.Warn("POST /cars - Access denied: user=%s", session.Email)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("POST /cars - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /cars - Failed to create car: user=%s, error=%v", session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car created: car_id=%d (%s)", created.ID, created.DisplayName())
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}
