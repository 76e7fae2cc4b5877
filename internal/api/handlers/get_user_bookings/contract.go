package get_user_bookings

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type BookingService interface {
	ListMine(ctx context.Context, session *domain.Session) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
