package list_reviews

import (
	"time"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID           int64  `json:"id"`
	CarID        int64  `json:"carId"`
	AuthorHandle string `json:"authorHandle"`
	Rating       int    `json:"rating"`
	Text         string `json:"text"`
	CreatedAt    string `json:"createdAt"`
}

// ListReviewsResponse HTTP response model
type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// FromDomain конвертирует domain модели в HTTP response
func FromDomain(reviews []*domain.Review) *ListReviewsResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, ReviewResponse{
			ID:           rv.ID,
			CarID:        rv.CarID,
			AuthorHandle: rv.AuthorHandle,
			Rating:       rv.Rating,
			Text:         rv.Text,
			CreatedAt:    rv.CreatedAt.Format(time.RFC3339),
		})
	}
	return &ListReviewsResponse{Reviews: out}
}
