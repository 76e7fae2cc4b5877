package create_booking

import (
	"github.com/m04kA/SURA-RentalService/internal/domain"
	createBooking "github.com/m04kA/SURA-RentalService/internal/usecase/create_booking"
	"github.com/m04kA/SURA-RentalService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CarID     int64  `json:"carId" validate:"required,gt=0"`
	StartDate string `json:"startDate" validate:"required"` // "2024-01-01"
	EndDate   string `json:"endDate" validate:"required"`   // "2024-01-03"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64   `json:"id"`
	CarID     int64   `json:"carId"`
	UserEmail string  `json:"userEmail"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Days      int     `json:"days"`
	DailyRate float64 `json:"dailyRate"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(session *domain.Session) (*createBooking.Request, error) {
	startDate, err := types.NewDateStringFromString(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := types.NewDateStringFromString(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Session:   session,
		CarID:     r.CarID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		CarID:     resp.CarID,
		UserEmail: resp.UserEmail,
		StartDate: resp.StartDate.String(),
		EndDate:   resp.EndDate.String(),
		Days:      resp.Days,
		DailyRate: resp.DailyRate,
		Total:     resp.Total,
		Status:    resp.Status,
	}
}
