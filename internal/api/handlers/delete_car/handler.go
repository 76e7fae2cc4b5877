package delete_car

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
	msgInvalidCarID = "некорректный ID автомобиля"
	msgUnauthorized = "требуется аутентификация"
	msgAccessDenied = "операция доступна только администратору"
	msgCarNotFound  = "автомобиль не найден"
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

// Handle DELETE /api/v1/cars/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	carID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || carID <= 0 {
		h.logger.Warn("DELETE /cars/{id} - Invalid car ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	if err := h.fleetService.DeleteCar(r.Context(), session, carID); err != nil {
		switch {
		case errors.Is(err, fleet.ErrAccessDenied):
			h.logger.Warn("DELETE /cars/%d - Access denied: user=%s", carID, session.Email)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, fleet.ErrVehicleNotFound):
			h.logger.Warn("DELETE /cars/%d - Not found", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("DELETE /cars/%d - Failed to delete car: user=%s, error=%v", carID, session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cars/%d - Car deleted: user=%s", carID, session.Email)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
