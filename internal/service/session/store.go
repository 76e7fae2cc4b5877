package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// ChangeListener вызывается при каждой замене сессии
// token идентифицирует сессию; session nil означает выход или истечение
type ChangeListener func(token string, session *domain.Session)

// Store хранилище текущих сессий процесса
// Сессии транзиентны: каждая замена (вход, выход, обновление токена)
// полностью перезаписывает запись и уведомляет подписчиков. Записи
// переживают только время жизни процесса
type Store struct {
	mu         sync.RWMutex
	sessions   map[string]*domain.Session // ключ - access token
	listeners  []ChangeListener
	adminEmail string

	authClient   AuthProviderClient
	timeProvider TimeProvider
	logger       Logger
}

// NewStore создает новое хранилище сессий
func NewStore(adminEmail string, authClient AuthProviderClient, logger Logger) *Store {
	return &Store{
		sessions:     make(map[string]*domain.Session),
		adminEmail:   adminEmail,
		authClient:   authClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Subscribe регистрирует подписчика на смену сессий
// Отдельной отписки нет: подписчики живут столько же, сколько процесс
func (s *Store) Subscribe(fn ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

// Set сохраняет сессию, замещая предыдущую с тем же токеном
func (s *Store) Set(session *domain.Session) {
	s.mu.Lock()
	s.sessions[session.AccessToken] = session
	listeners := append([]ChangeListener(nil), s.listeners...)
	s.mu.Unlock()

	s.logger.Info("SessionStore: session set for %s", session.Email)
	for _, fn := range listeners {
		fn(session.AccessToken, session)
	}
}

// Delete удаляет сессию (выход пользователя)
func (s *Store) Delete(token string) {
	s.mu.Lock()
	_, existed := s.sessions[token]
	delete(s.sessions, token)
	listeners := append([]ChangeListener(nil), s.listeners...)
	s.mu.Unlock()

	if !existed {
		return
	}

	s.logger.Info("SessionStore: session removed")
	for _, fn := range listeners {
		fn(token, nil)
	}
}

// Get возвращает действующую сессию по токену
// Истёкшие сессии удаляются и не возвращаются
func (s *Store) Get(token string) (*domain.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if session.IsExpired(s.timeProvider.Now()) {
		s.Delete(token)
		return nil, false
	}

	return session, true
}

// Resolve возвращает сессию по bearer-токену
// Если токен неизвестен хранилищу, пробует проверить его у провайдера
// и при успехе сохраняет восстановленную сессию (эквивалент уведомления
// о token refresh)
func (s *Store) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	if session, ok := s.Get(token); ok {
		return session, nil
	}

	user, err := s.authClient.GetUser(ctx, token)
	if err != nil {
		s.logger.Warn("SessionStore: token rejected by auth provider: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	session := &domain.Session{
		Email:       user.Email,
		AccessToken: token,
		Metadata:    user.UserMetadata,
	}
	s.Set(session)

	return session, nil
}

// IsAdmin возвращает true, если сессия принадлежит администратору
// Производный признак: сравнение с настроенным адресом, роль не хранится
func (s *Store) IsAdmin(session *domain.Session) bool {
	if session == nil {
		return false
	}
	return session.IsAdmin(s.adminEmail)
}
