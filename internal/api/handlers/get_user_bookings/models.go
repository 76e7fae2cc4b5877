package get_user_bookings

import (
	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64   `json:"id"`
	CarID     int64   `json:"carId"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
}

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain конвертирует domain модели в HTTP response
func FromDomain(bookings []*domain.Booking) *ListBookingsResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingResponse{
			ID:        b.ID,
			CarID:     b.CarID,
			StartDate: b.StartDate.String(),
			EndDate:   b.EndDate.String(),
			Total:     b.TotalPrice,
			Status:    string(b.Status),
		})
	}
	return &ListBookingsResponse{Bookings: out}
}
