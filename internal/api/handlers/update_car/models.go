package update_car

import (
	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// UpdateCarRequest HTTP request model
// Поля опциональны: обновляется только то, что передано
type UpdateCarRequest struct {
	Brand       *string  `json:"brand,omitempty"`
	Model       *string  `json:"model,omitempty"`
	Category    *string  `json:"category,omitempty"`
	DailyRate   *float64 `json:"dailyRate,omitempty" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Description *string  `json:"description,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
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

// ApplyTo накладывает переданные поля на существующую модель
func (r *UpdateCarRequest) ApplyTo(v *domain.Vehicle) *domain.Vehicle {
	updated := *v

	if r.Brand != nil {
		updated.Brand = *r.Brand
	}
	if r.Model != nil {
		updated.Model = *r.Model
	}
	if r.Category != nil {
		updated.Category = domain.Category(*r.Category)
	}
	if r.DailyRate != nil {
		updated.DailyRate = *r.DailyRate
	}
	if r.ImageURL != nil {
		updated.ImageURL = *r.ImageURL
	}
	if r.Description != nil {
		updated.Description = *r.Description
	}
	if r.IsAvailable != nil {
		updated.IsAvailable = *r.IsAvailable
	}

	return &updated
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
