package create_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	"github.com/m04kA/SURA-RentalService/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный ID автомобиля"
	msgUnauthorized       = "требуется аутентификация"
	msgSaveFailed         = "не удалось сохранить отзыв"
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

// Handle POST /api/v1/cars/{carId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil || carID <= 0 {
		h.logger.Warn("POST /cars/{carId}/reviews - Invalid car ID: %v", mux.Vars(r)["carId"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars/%d/reviews - Invalid request body: %v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /cars/%d/reviews - Validation failed: %v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.reviewService.Post(r.Context(), session, carID, req.Rating, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /cars/%d/reviews - Invalid input: %v", carID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reviews.ErrSaveFailed):
			h.logger.Warn("POST /cars/%d/reviews - Save failed: user=%s, error=%v", carID, session.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSaveFailed)

		default:
			h.logger.Error("POST /cars/%d/reviews - Failed to create review: user=%s, error=%v",
				carID, session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars/%d/reviews - Review created: review_id=%d, author=%s",
		carID, review.ID, review.AuthorHandle)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(review))
}
