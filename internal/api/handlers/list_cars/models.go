package list_cars

import (
	"github.com/m04kA/SURA-RentalService/internal/domain"
)

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

// ListCarsResponse HTTP response model
type ListCarsResponse struct {
	Cars []VehicleResponse `json:"cars"`
}

// FromDomain конвертирует domain модели в HTTP response
func FromDomain(vehicles []*domain.Vehicle) *ListCarsResponse {
	cars := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		cars = append(cars, VehicleResponse{
			ID:            v.ID,
			Brand:         v.Brand,
			Model:         v.Model,
			Category:      string(v.Category),
			DailyRate:     v.DailyRate,
			ImageURL:      v.ImageURL,
			Description:   v.Description,
			AverageRating: v.AverageRating,
			IsAvailable:   v.IsAvailable,
		})
	}
	return &ListCarsResponse{Cars: cars}
}
