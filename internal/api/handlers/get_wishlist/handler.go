package get_wishlist

import (
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
)

const (
	msgUnauthorized = "требуется аутентификация"
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

// Handle GET /api/v1/wishlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	entries, err := h.wishlistService.Load(r.Context(), session.Email)
	if err != nil {
		h.logger.Error("GET /wishlist - Failed to load wishlist: user=%s, error=%v", session.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /wishlist - %d entries: user=%s", len(entries), session.Email)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(entries))
}
