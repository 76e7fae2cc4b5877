package delete_car

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type FleetService interface {
	DeleteCar(ctx context.Context, session *domain.Session, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
