package get_wishlist

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type WishlistService interface {
	Load(ctx context.Context, email string) ([]*domain.WishlistEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
