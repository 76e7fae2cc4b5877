package list_reviews

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type ReviewService interface {
	ListForCar(ctx context.Context, carID int64) ([]*domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
