package delete_review

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type ReviewService interface {
	Delete(ctx context.Context, session *domain.Session, reviewID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
