package list_reviews

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
)

const (
	msgInvalidCarID = "некорректный ID автомобиля"
)

type Handler struct {
	reviewService ReviewService
	logger        Logger
}

func NewHandler(reviewService ReviewService, logger Logger) *Handler {
	return &Handler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// Handle GET /api/v1/cars/{carId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil || carID <= 0 {
		h.logger.Warn("GET /cars/{carId}/reviews - Invalid car ID: %v", mux.Vars(r)["carId"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	reviews, err := h.reviewService.ListForCar(r.Context(), carID)
	if err != nil {
		h.logger.Error("GET /cars/%d/reviews - Failed to list reviews: %v", carID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars/%d/reviews - %d reviews", carID, len(reviews))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(reviews))
}
