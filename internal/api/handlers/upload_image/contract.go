package upload_image

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type MediaService interface {
	UploadCarImage(ctx context.Context, session *domain.Session, originalName, contentType string, data []byte) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
