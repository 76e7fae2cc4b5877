package fleet

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// ResourceAPIClient интерфейс клиента внешнего Resource API
type ResourceAPIClient interface {
	ListCars(ctx context.Context) ([]*domain.Vehicle, error)
	CreateCar(ctx context.Context, token string, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	UpdateCar(ctx context.Context, token string, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	DeleteCar(ctx context.Context, token string, id int64) error
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
