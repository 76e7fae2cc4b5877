package list_cars

import (
	"errors"
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/service/fleet"
)

const (
	msgInvalidCategory = "неизвестная категория автомобилей"
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

// Handle GET /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	category := domain.CategoryAll
	if raw := r.URL.Query().Get("category"); raw != "" {
		category = domain.Category(raw)
	}

	vehicles, err := h.fleetService.List(r.Context(), search, category)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("GET /cars - Invalid category: %q", category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /cars - Failed to list cars: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars - %d cars (search=%q, category=%q)", len(vehicles), search, category)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(vehicles))
}
