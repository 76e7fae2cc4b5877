package delete_review

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
	msgInvalidReviewID = "некорректный ID отзыва"
	msgUnauthorized    = "требуется аутентификация"
	msgReviewNotFound  = "отзыв не найден"
	msgAccessDenied    = "нет прав на удаление этого отзыва"
	msgDeletePending   = "удаление этого отзыва уже выполняется"
	msgSaveFailed      = "не удалось удалить отзыв"
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

// Handle DELETE /api/v1/reviews/{reviewId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reviewID, err := strconv.ParseInt(mux.Vars(r)["reviewId"], 10, 64)
	if err != nil || reviewID <= 0 {
		h.logger.Warn("DELETE /reviews/{reviewId} - Invalid review ID: %v", mux.Vars(r)["reviewId"])
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	if err := h.reviewService.Delete(r.Context(), session, reviewID); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("DELETE /reviews/%d - Not found: user=%s", reviewID, session.Email)
			handlers.RespondNotFound(w, msgReviewNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("DELETE /reviews/%d - Access denied: user=%s", reviewID, session.Email)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reviews.ErrDeletePending):
			h.logger.Warn("DELETE /reviews/%d - Delete already pending: user=%s", reviewID, session.Email)
			handlers.RespondConflict(w, msgDeletePending)

		case errors.Is(err, reviews.ErrSaveFailed):
			h.logger.Warn("DELETE /reviews/%d - Save failed: %v", reviewID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSaveFailed)

		default:
			h.logger.Error("DELETE /reviews/%d - Failed to delete: user=%s, error=%v", reviewID, session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reviews/%d - Deleted: user=%s", reviewID, session.Email)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
