package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/authprovider"
	"github.com/m04kA/SURA-RentalService/pkg/ptr"
)

// Service сервис аутентификации поверх внешнего Auth Provider
// Учетные данные хранит провайдер; сервис только обменивает их на
// сессию и синхронизирует хранилище сессий процесса
type Service struct {
	client AuthProviderClient
	store  SessionStore
	logger Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(client AuthProviderClient, store SessionStore, logger Logger) *Service {
	return &Service{
		client: client,
		store:  store,
		logger: logger,
	}
}

// SignIn выполняет вход и сохраняет полученную сессию
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	session, err := s.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, authprovider.ErrInvalidCredentials) {
			s.logger.Warn("Auth.SignIn: invalid credentials for %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Auth.SignIn: provider error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.store.Set(session)
	s.logger.Info("Auth.SignIn: signed in %s", session.Email)
	return session, nil
}

// SignUp регистрирует пользователя у провайдера
// Сессия не создается: провайдер сперва требует подтверждения email
func (s *Service) SignUp(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	if err := s.client.SignUp(ctx, email, password); err != nil {
		s.logger.Error("Auth.SignUp: provider error for %s: %v", email, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Auth.SignUp: registered %s, confirmation email sent", email)
	return nil
}

// SignOut завершает сессию у провайдера и удаляет ее из хранилища
// Локальная сессия удаляется даже при отказе провайдера
func (s *Service) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return ErrUnauthenticated
	}

	err := s.client.SignOut(ctx, session.AccessToken)
	s.store.Delete(session.AccessToken)

	if err != nil && !errors.Is(err, authprovider.ErrUnauthorized) {
		s.logger.Warn("Auth.SignOut: provider error for %s: %v", session.Email, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Auth.SignOut: signed out %s", session.Email)
	return nil
}

// ResetPassword запрашивает у провайдера письмо для сброса пароля
// Ответ одинаков для существующего и несуществующего email
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if err := s.client.ResetPassword(ctx, email); err != nil {
		s.logger.Error("Auth.ResetPassword: provider error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Auth.ResetPassword: recovery email requested for %s", email)
	return nil
}

// UpdateProfile обновляет пароль и/или метаданные пользователя
func (s *Service) UpdateProfile(ctx context.Context, session *domain.Session, newPassword string, metadata map[string]string) error {
	if session == nil {
		return ErrUnauthenticated
	}
	if newPassword == "" && len(metadata) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if newPassword != "" && len(newPassword) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	req := &authprovider.UpdateUserRequest{}
	if newPassword != "" {
		req.Password = ptr.Ptr(newPassword)
	}
	if len(metadata) > 0 {
		req.Data = metadata
	}

	if err := s.client.UpdateUser(ctx, session.AccessToken, req); err != nil {
		if errors.Is(err, authprovider.ErrUnauthorized) {
			return ErrUnauthenticated
		}
		s.logger.Error("Auth.UpdateProfile: provider error for %s: %v", session.Email, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if len(metadata) > 0 {
		merged := make(map[string]string, len(session.Metadata)+len(metadata))
		for k, v := range session.Metadata {
			merged[k] = v
		}
		for k, v := range metadata {
			merged[k] = v
		}
		session.Metadata = merged
		s.store.Set(session)
	}

	s.logger.Info("Auth.UpdateProfile: updated profile for %s", session.Email)
	return nil
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	return nil
}
