package bookings

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// ResourceAPIClient интерфейс клиента внешнего Resource API
type ResourceAPIClient interface {
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	CreateBooking(ctx context.Context, token string, booking *domain.Booking) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
