package create_review

import (
	"time"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID           int64  `json:"id"`
	CarID        int64  `json:"carId"`
	AuthorHandle string `json:"authorHandle"`
	Rating       int    `json:"rating"`
	Text         string `json:"text"`
	CreatedAt    string `json:"createdAt"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(review *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:           review.ID,
		CarID:        review.CarID,
		AuthorHandle: review.AuthorHandle,
		Rating:       review.Rating,
		Text:         review.Text,
		CreatedAt:    review.CreatedAt.Format(time.RFC3339),
	}
}
