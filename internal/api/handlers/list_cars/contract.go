package list_cars

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type FleetService interface {
	List(ctx context.Context, searchTerm string, category domain.Category) ([]*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
