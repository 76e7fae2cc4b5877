package authprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент провайдера аутентификации и файлового хранилища (BaaS)
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера
func NewClient(baseURL, anonKey string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// SignInWithPassword выполняет вход по паре email/пароль
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var tokenResp TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", body, &tokenResp)
	if err != nil {
		return nil, err
	}

	c.log.Info("AuthProvider: signed in user %s", tokenResp.User.Email)
	return tokenResp.ToSession(time.Now()), nil
}

// SignUp регистрирует нового пользователя
// Побочный эффект на стороне провайдера: письмо для подтверждения email
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/v1/signup", "", body, nil)
}

// ResetPassword отправляет письмо для сброса пароля
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/v1/recover", "", body, nil)
}

// UpdateUser обновляет пароль и/или метаданные пользователя
func (c *Client) UpdateUser(ctx context.Context, token string, req *UpdateUserRequest) error {
	return c.do(ctx, http.MethodPut, "/auth/v1/user", token, req, nil)
}

// SignOut завершает сессию на стороне провайдера
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", token, nil, nil)
}

// GetUser возвращает пользователя по токену сессии
// Используется middleware для проверки bearer-токена
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadFile загружает файл в бакет хранилища и возвращает публичный URL
func (c *Client) UploadFile(ctx context.Context, token, bucket, filename, contentType string, data []byte) (string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Cache-Control", "max-age=3600")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		c.log.Warn("AuthProvider: upload to %s/%s returned %d: %s", bucket, filename, resp.StatusCode, string(raw))
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrUploadFailed, resp.StatusCode, string(raw))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, filename)
	c.log.Info("AuthProvider: uploaded %s/%s", bucket, filename)
	return publicURL, nil
}

// do выполняет запрос к провайдеру и декодирует ответ в out (если не nil)
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}, out interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest && path == "/auth/v1/token?grant_type=password":
		return ErrInvalidCredentials
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		var errResp ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &errResp)
		if msg := errResp.Message(); msg != "" {
			return fmt.Errorf("%w: %s", ErrAuth, msg)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrAuth, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
