package create_car

import (
	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// CreateCarRequest HTTP request model
type CreateCarRequest struct {
	Brand       string  `json:"brand" validate:"required"`
	Model       string  `json:"model" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	DailyRate   float64 `json:"dailyRate" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Description string  `json:"description,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// VehicleResponse HTTP response model
type VehicleResponse struct {
	ID            int64   `json:"id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Category      string  `json:"category"`
	DailyRate     float64 `json:"dailyRate"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Description   string  `json:"description,omitempty"`
	AverageRating float64 `json:"averageRating"`
	IsAvailable   bool    `json:"isAvailable"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *CreateCarRequest) ToDomain() *domain.Vehicle {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}

	return &domain.Vehicle{
		Brand:         r.Brand,
		Model:         r.Model,
		Category:      domain.Category(r.Category),
		DailyRate:     r.DailyRate,
		ImageURL:      r.ImageURL,
		Description:   r.Description,
		AverageRating: domain.DefaultAverageRating,
		IsAvailable:   available,
	}
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:            v.ID,
		Brand:         v.Brand,
		Model:         v.Model,
		Category:      string(v.Category),
		DailyRate:     v.DailyRate,
		ImageURL:      v.ImageURL,
		Description:   v.Description,
		AverageRating: v.AverageRating,
		IsAvailable:   v.IsAvailable,
	}
}
