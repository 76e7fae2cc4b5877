package authprovider

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// TokenResponse ответ провайдера на password grant
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// User модель пользователя провайдера
type User struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserMetadata map[string]string `json:"user_metadata"`
}

// UpdateUserRequest запрос на обновление пользователя
// Поля опциональны: обновляется только то, что передано
type UpdateUserRequest struct {
	Password *string           `json:"password,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}

// ErrorResponse модель ошибки провайдера
// Разные версии API используют разные поля, читаем оба
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
}

// Message возвращает человекочитаемое сообщение об ошибке
func (e *ErrorResponse) Message() string {
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	if e.Msg != "" {
		return e.Msg
	}
	return e.Error
}

// ToSession конвертирует ответ провайдера в domain сессию
// Срок действия берётся из exp claim токена; expires_in служит
// запасным вариантом, если claim не читается
func (t *TokenResponse) ToSession(now time.Time) *domain.Session {
	session := &domain.Session{
		Email:        t.User.Email,
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		Metadata:     t.User.UserMetadata,
	}

	if exp, ok := tokenExpiry(t.AccessToken); ok {
		session.ExpiresAt = exp
	} else if t.ExpiresIn > 0 {
		session.ExpiresAt = now.Add(time.Duration(t.ExpiresIn) * time.Second)
	}

	return session
}

// tokenExpiry извлекает exp claim из access token без проверки подписи
// Подпись проверяет сам провайдер; клиенту claim нужен только чтобы
// знать, когда сессия протухнет
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
