package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SURA-RentalService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session == nil {
		return ErrUnauthenticated
	}

	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if err := req.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startDate format: %v", ErrInvalidInput, err)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}
	if err := req.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endDate format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDates проверяет, что период аренды пригоден для бронирования
func validateDates(start, end types.DateString, now time.Time) error {
	today, err := types.NewDateStringFromString(now.Format(types.DateFormat))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if start.IsBefore(today) {
		return ErrDateInPast
	}

	if !start.IsBefore(end) {
		return ErrInvalidDateRange
	}

	return nil
}
