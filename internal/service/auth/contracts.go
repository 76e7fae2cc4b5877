package auth

import (
	"context"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/authprovider"
)

// AuthProviderClient интерфейс клиента внешнего Auth Provider
type AuthProviderClient interface {
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password string) error
	ResetPassword(ctx context.Context, email string) error
	UpdateUser(ctx context.Context, token string, req *authprovider.UpdateUserRequest) error
	SignOut(ctx context.Context, token string) error
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Set(session *domain.Session)
	Delete(token string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
