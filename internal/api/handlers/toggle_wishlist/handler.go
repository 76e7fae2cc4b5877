package toggle_wishlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	"github.com/m04kA/SURA-RentalService/internal/service/wishlist"
)

const (
	msgInvalidCarID  = "некорректный ID автомобиля"
	msgUnauthorized  = "требуется аутентификация"
	msgTogglePending = "переключение избранного уже выполняется"
	msgSaveFailed    = "не удалось изменить избранное"
)

type Handler struct {
	wishlistService WishlistService
	logger          Logger
}

func NewHandler(wishlistService WishlistService, logger Logger) *Handler {
	return &Handler{
		wishlistService: wishlistService,
		logger:          logger,
	}
}

// Handle POST /api/v1/cars/{carId}/wishlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil || carID <= 0 {
		h.logger.Warn("POST /cars/{carId}/wishlist - Invalid car ID: %v", mux.Vars(r)["carId"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	liked, err := h.wishlistService.Toggle(r.Context(), session, carID)
	if err != nil {
		switch {
		case errors.Is(err, wishlist.ErrTogglePending):
			h.logger.Warn("POST /cars/%d/wishlist - Toggle already pending: user=%s", carID, session.Email)
			handlers.RespondConflict(w, msgTogglePending)

		case errors.Is(err, wishlist.ErrSaveFailed):
			h.logger.Warn("POST /cars/%d/wishlist - Save failed: user=%s, error=%v", carID, session.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSaveFailed)

		default:
			h.logger.Error("POST /cars/%d/wishlist - Failed to toggle: user=%s, error=%v",
				carID, session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars/%d/wishlist - Toggled: user=%s, liked=%t", carID, session.Email, liked)
	handlers.RespondJSON(w, http.StatusOK, ToggleResponse{CarID: carID, Liked: liked})
}
