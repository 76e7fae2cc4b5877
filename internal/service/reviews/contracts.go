package reviews

import (
	"context"
	"time"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// ResourceAPIClient интерфейс клиента внешнего Resource API
type ResourceAPIClient interface {
	ListReviews(ctx context.Context) ([]*domain.Review, error)
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// AdminChecker проверка привилегированной сессии
// Реализуется хранилищем сессий
type AdminChecker interface {
	IsAdmin(session *domain.Session) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
