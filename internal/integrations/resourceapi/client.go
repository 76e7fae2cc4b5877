package resourceapi

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

// Client клиент внешнего Resource API (cars, bookings, reviews, wishlists)
// API владеет всеми данными; клиент не хранит состояние
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Resource API
// transport может быть nil (будет использован http.DefaultTransport);
// обёртка с метриками передаётся отсюда, из main
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// --- Cars ---

// ListCars получает полный список автомобилей (fleet)
// Порядок записей сохраняется как в ответе API
func (c *Client) ListCars(ctx context.Context) ([]*domain.Vehicle, error) {
	var wire []Car
	if err := c.do(ctx, http.MethodGet, "/api/cars/", "", nil, &wire); err != nil {
		return nil, err
	}

	vehicles := make([]*domain.Vehicle, 0, len(wire))
	for i := range wire {
		vehicles = append(vehicles, wire[i].ToDomain())
	}
	return vehicles, nil
}

// CreateCar создает автомобиль (только для администратора)
// Запрос подписывается bearer-токеном: право на мутацию проверяет API
func (c *Client) CreateCar(ctx context.Context, token string, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	var created Car
	if err := c.do(ctx, http.MethodPost, "/api/cars/", token, FromDomainCar(vehicle), &created); err != nil {
		return nil, err
	}
	return created.ToDomain(), nil
}

// UpdateCar обновляет автомобиль (только для администратора)
func (c *Client) UpdateCar(ctx context.Context, token string, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	path := fmt.Sprintf("/api/cars/%d/", vehicle.ID)

	var updated Car
	if err := c.do(ctx, http.MethodPut, path, token, FromDomainCar(vehicle), &updated); err != nil {
		return nil, err
	}
	return updated.ToDomain(), nil
}

// DeleteCar удаляет автомобиль (только для администратора)
func (c *Client) DeleteCar(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/cars/%d/", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// --- Bookings ---

// ListBookings получает все бронирования
// API не поддерживает фильтрацию по владельцу, отбор делает вызывающий код
func (c *Client) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	var wire []Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/", "", nil, &wire); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(wire))
	for i := range wire {
		bookings = append(bookings, wire[i].ToDomain())
	}
	return bookings, nil
}

// CreateBooking создает бронирование от имени аутентифицированного пользователя
func (c *Client) CreateBooking(ctx context.Context, token string, booking *domain.Booking) (*domain.Booking, error) {
	var created Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings/", token, FromDomainBooking(booking), &created); err != nil {
		return nil, err
	}
	return created.ToDomain(), nil
}

// DeleteBooking удаляет (отменяет) бронирование
func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/bookings/%d/", id)
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// --- Reviews ---

// ListReviews получает все отзывы (новые первыми, порядок задаёт API)
func (c *Client) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	var wire []Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews/", "", nil, &wire); err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, 0, len(wire))
	for i := range wire {
		reviews = append(reviews, wire[i].ToDomain())
	}
	return reviews, nil
}

// CreateReview создает отзыв
func (c *Client) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	var created Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews/", "", FromDomainReview(review), &created); err != nil {
		return nil, err
	}
	return created.ToDomain(), nil
}

// DeleteReview удаляет отзыв
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/reviews/%d/", id)
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// --- Wishlists ---

// ListWishlists получает все записи избранного
func (c *Client) ListWishlists(ctx context.Context) ([]*domain.WishlistEntry, error) {
	var wire []WishlistEntry
	if err := c.do(ctx, http.MethodGet, "/api/wishlists/", "", nil, &wire); err != nil {
		return nil, err
	}

	entries := make([]*domain.WishlistEntry, 0, len(wire))
	for i := range wire {
		entries = append(entries, wire[i].ToDomain())
	}
	return entries, nil
}

// CreateWishlistEntry создает запись избранного
func (c *Client) CreateWishlistEntry(ctx context.Context, entry *domain.WishlistEntry) (*domain.WishlistEntry, error) {
	var created WishlistEntry
	if err := c.do(ctx, http.MethodPost, "/api/wishlists/", "", FromDomainWishlistEntry(entry), &created); err != nil {
		return nil, err
	}
	return created.ToDomain(), nil
}

// DeleteWishlistEntry удаляет запись избранного
func (c *Client) DeleteWishlistEntry(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/wishlists/%d/", id)
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// do выполняет запрос к внешнему API и декодирует ответ в out (если не nil)
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
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.log.Warn("ResourceAPI: %s %s returned %d: %s", method, path, resp.StatusCode, string(raw))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSaveFailed, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
