package get_wishlist

import (
	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// WishlistEntryResponse HTTP response model
type WishlistEntryResponse struct {
	ID    int64 `json:"id"`
	CarID int64 `json:"carId"`
}

// WishlistResponse HTTP response model
type WishlistResponse struct {
	Entries []WishlistEntryResponse `json:"entries"`
}

// FromDomain конвертирует domain модели в HTTP response
func FromDomain(entries []*domain.WishlistEntry) *WishlistResponse {
	out := make([]WishlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, WishlistEntryResponse{
			ID:    e.ID,
			CarID: e.CarID,
		})
	}
	return &WishlistResponse{Entries: out}
}
