package media

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// StorageClient интерфейс файлового хранилища провайдера
type StorageClient interface {
	UploadFile(ctx context.Context, token, bucket, filename, contentType string, data []byte) (string, error)
}

// AdminChecker проверка привилегированной сессии
type AdminChecker interface {
	IsAdmin(session *domain.Session) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
