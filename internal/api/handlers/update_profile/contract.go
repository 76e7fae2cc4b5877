package update_profile

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type AuthService interface {
	UpdateProfile(ctx context.Context, session *domain.Session, newPassword string, metadata map[string]string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
