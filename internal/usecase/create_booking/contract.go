package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// FleetService интерфейс сервиса автопарка
type FleetService interface {
	GetByID(ctx context.Context, carID int64) (*domain.Vehicle, error)
}

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Create(ctx context.Context, session *domain.Session, booking *domain.Booking) (*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
