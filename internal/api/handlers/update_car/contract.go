package update_car

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type FleetService interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	UpdateCar(ctx context.Context, session *domain.Session, vehicle *domain.Vehicle) (*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
