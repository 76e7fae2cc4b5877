package domain

import "time"

// Session represents an authenticated identity
// Сессия транзиентна: живёт в памяти процесса и уничтожается
// при выходе или истечении срока действия токена
type Session struct {
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Metadata     map[string]string
}

// Handle returns the public handle of the session identity
func (s *Session) Handle() string {
	return HandleFromEmail(s.Email)
}

// IsExpired returns true if the session credential has expired
// Нулевой ExpiresAt трактуется как отсутствие информации об истечении
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// IsAdmin returns true if the session identity matches the configured
// privileged address
// Структурная проверка, роль нигде не хранится. Используется только
// как display gate, границей авторизации остаётся внешний API
func (s *Session) IsAdmin(adminEmail string) bool {
	return adminEmail != "" && s.Email == adminEmail
}
