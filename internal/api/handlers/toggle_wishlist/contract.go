package toggle_wishlist

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type WishlistService interface {
	Toggle(ctx context.Context, session *domain.Session, carID int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
