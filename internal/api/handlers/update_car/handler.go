package update_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	"github.com/m04kA/SURA-RentalService/internal/service/fleet"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный ID автомобиля"
	msgUnauthorized       = "требуется аутентификация"
	msgAccessDenied       = "операция доступна только администратору"
	msgCarNotFound        = "автомобиль не найден"
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

// Handle PUT /api/v1/cars/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	carID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || carID <= 0 {
		h.logger.Warn("PUT /cars/{id} - Invalid car ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req UpdateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cars/%d - Invalid request body: %v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /cars/%d - Validation failed: %v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	current, err := h.fleetService.GetByID(r.Context(), carID)
	if err != nil {
		if errors.Is(err, fleet.ErrVehicleNotFound) {
			h.logger.Warn("PUT /cars/%d - Not found", carID)
			handlers.RespondNotFound(w, msgCarNotFound)
			return
		}
		h.logger.Error("PUT /cars/%d - Failed to get car: %v", carID, err)
		handlers.RespondInternalError(w)
		return
	}

	updated, err := h.fleetService.UpdateCar(r.Context(), session, req.ApplyTo(current))
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrAccessDenied):
			h.logger.Warn("PUT /cars/%d - Access denied: user=%s", carID, session.Email)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, fleet.ErrVehicleNotFound):
			h.logger.Warn("PUT /cars/%d - Not found", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("PUT /cars/%d - Invalid input: %v", carID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /cars/%d - Failed to update car: user=%s, error=%v", carID, session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cars/%d - Car updated: user=%s", carID, session.Email)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
