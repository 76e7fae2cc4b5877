package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// MaxImageSize максимальный размер загружаемого изображения в байтах
const MaxImageSize = 5 << 20

// Service сервис загрузки изображений автомобилей
// Файлы уходят в бакет внешнего хранилища; имя объекта генерируется
// заново при каждой загрузке, чтобы исключить перезапись
type Service struct {
	client StorageClient
	admin  AdminChecker
	bucket string
	logger Logger
}

// NewService создает новый экземпляр сервиса загрузки изображений
func NewService(client StorageClient, admin AdminChecker, bucket string, logger Logger) *Service {
	return &Service{
		client: client,
		admin:  admin,
		bucket: bucket,
		logger: logger,
	}
}

// UploadCarImage загружает изображение автомобиля и возвращает публичный URL
// Доступно только администратору
func (s *Service) UploadCarImage(ctx context.Context, session *domain.Session, originalName, contentType string, data []byte) (string, error) {
	if !s.admin.IsAdmin(session) {
		s.logger.Warn("Media.UploadCarImage: access denied for %s", sessionEmail(session))
		return "", ErrAccessDenied
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, MaxImageSize)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidInput, contentType)
	}

	filename := objectName(originalName)

	url, err := s.client.UploadFile(ctx, session.AccessToken, s.bucket, filename, contentType, data)
	if err != nil {
		s.logger.Error("Media.UploadCarImage: upload failed (%s): %v", filename, err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	s.logger.Info("Media.UploadCarImage: uploaded %s (%d bytes)", filename, len(data))
	return url, nil
}

// objectName генерирует уникальное имя объекта, сохраняя расширение файла
func objectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + ext
}

func sessionEmail(session *domain.Session) string {
	if session == nil {
		return "<no session>"
	}
	return session.Email
}
