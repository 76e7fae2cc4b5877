package resourceapi

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/pkg/types"
)

// Car модель автомобиля внешнего API
// Денежные поля приходят строками (DecimalField), поэтому json.Number
type Car struct {
	ID            int64       `json:"id,omitempty"`
	Brand         string      `json:"brand"`
	Model         string      `json:"model"`
	Category      string      `json:"category"`
	DailyRate     json.Number `json:"daily_rate"`
	ImageURL      string      `json:"image_url"`
	Description   string      `json:"description"`
	AverageRating json.Number `json:"average_rating,omitempty"`
	IsAvailable   bool        `json:"is_available"`
}

// Booking модель бронирования внешнего API
type Booking struct {
	ID         int64            `json:"id,omitempty"`
	Car        int64            `json:"car"`
	UserEmail  string           `json:"user_email"`
	StartDate  types.DateString `json:"start_date"`
	EndDate    types.DateString `json:"end_date"`
	TotalPrice json.Number      `json:"total_price"`
	Status     string           `json:"status"`
}

// Review модель отзыва внешнего API
type Review struct {
	ID        int64     `json:"id,omitempty"`
	Car       int64     `json:"car"`
	UserEmail string    `json:"user_email"` // публичный handle автора, не полный email
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// WishlistEntry модель записи избранного внешнего API
type WishlistEntry struct {
	ID        int64  `json:"id,omitempty"`
	Car       int64  `json:"car"`
	UserEmail string `json:"user_email"`
}

// ErrorResponse модель ошибки внешнего API
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Методы конвертации wire-моделей в domain

// ToDomain конвертирует Car в domain модель
func (c *Car) ToDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:            c.ID,
		Brand:         c.Brand,
		Model:         c.Model,
		Category:      domain.Category(c.Category),
		DailyRate:     numberToFloat(c.DailyRate),
		ImageURL:      c.ImageURL,
		Description:   c.Description,
		AverageRating: numberToFloat(c.AverageRating),
		IsAvailable:   c.IsAvailable,
	}
}

// FromDomainCar конвертирует domain модель в wire-модель
func FromDomainCar(v *domain.Vehicle) *Car {
	return &Car{
		ID:          v.ID,
		Brand:       v.Brand,
		Model:       v.Model,
		Category:    string(v.Category),
		DailyRate:   floatToNumber(v.DailyRate),
		ImageURL:    v.ImageURL,
		Description: v.Description,
		IsAvailable: v.IsAvailable,
	}
}

// ToDomain конвертирует Booking в domain модель
func (b *Booking) ToDomain() *domain.Booking {
	return &domain.Booking{
		ID:         b.ID,
		CarID:      b.Car,
		UserEmail:  b.UserEmail,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: numberToFloat(b.TotalPrice),
		Status:     domain.BookingStatus(b.Status),
	}
}

// FromDomainBooking конвертирует domain модель в wire-модель
func FromDomainBooking(b *domain.Booking) *Booking {
	return &Booking{
		ID:         b.ID,
		Car:        b.CarID,
		UserEmail:  b.UserEmail,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: floatToNumber(b.TotalPrice),
		Status:     string(b.Status),
	}
}

// ToDomain конвертирует Review в domain модель
func (r *Review) ToDomain() *domain.Review {
	return &domain.Review{
		ID:           r.ID,
		CarID:        r.Car,
		AuthorHandle: r.UserEmail,
		Rating:       r.Rating,
		Text:         r.Text,
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainReview конвертирует domain модель в wire-модель
func FromDomainReview(r *domain.Review) *Review {
	return &Review{
		ID:        r.ID,
		Car:       r.CarID,
		UserEmail: r.AuthorHandle,
		Rating:    r.Rating,
		Text:      r.Text,
	}
}

// ToDomain конвертирует WishlistEntry в domain модель
func (w *WishlistEntry) ToDomain() *domain.WishlistEntry {
	return &domain.WishlistEntry{
		ID:         w.ID,
		CarID:      w.Car,
		OwnerEmail: w.UserEmail,
	}
}

// FromDomainWishlistEntry конвертирует domain модель в wire-модель
func FromDomainWishlistEntry(w *domain.WishlistEntry) *WishlistEntry {
	return &WishlistEntry{
		ID:        w.ID,
		Car:       w.CarID,
		UserEmail: w.OwnerEmail,
	}
}

func numberToFloat(n json.Number) float64 {
	if n == "" {
		return 0
	}
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

func floatToNumber(f float64) json.Number {
	return json.Number(strconv.FormatFloat(f, 'f', 2, 64))
}
