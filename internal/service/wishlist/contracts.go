package wishlist

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// ResourceAPIClient интерфейс клиента внешнего Resource API
type ResourceAPIClient interface {
	ListWishlists(ctx context.Context) ([]*domain.WishlistEntry, error)
	CreateWishlistEntry(ctx context.Context, entry *domain.WishlistEntry) (*domain.WishlistEntry, error)
	DeleteWishlistEntry(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
