package create_review

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type ReviewService interface {
	Post(ctx context.Context, session *domain.Session, carID int64, rating int, text string) (*domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
