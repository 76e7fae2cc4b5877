package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/service/bookings"
	"github.com/m04kA/SURA-RentalService/internal/service/fleet"
)

// UseCase use case для создания бронирования
type UseCase struct {
	fleetService   FleetService
	bookingService BookingService
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fleetService FleetService,
	bookingService BookingService,
	logger Logger,
) *UseCase {
	return &UseCase{
		fleetService:   fleetService,
		bookingService: bookingService,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Стоимость считается на сервере заново по текущей ставке автомобиля,
// присланный клиентом итог не используется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: user=%s, car=%d, start=%s, end=%s",
		req.Session.Email, req.CarID, req.StartDate, req.EndDate)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация периода аренды
	if err := validateDates(req.StartDate, req.EndDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем автомобиль и его текущую ставку
	vehicle, err := uc.fleetService.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, fleet.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CreateBooking: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	if !vehicle.IsAvailable {
		uc.logger.Warn("CreateBooking: car id=%d is not available", req.CarID)
		return nil, ErrCarUnavailable
	}

	// 5. Считаем стоимость за период
	quote := ComputePrice(vehicle.DailyRate, req.StartDate, req.EndDate)
	if !quote.Valid {
		return nil, ErrInvalidDateRange
	}

	// 6. Сохраняем бронирование через внешний API
	booking := &domain.Booking{
		CarID:      req.CarID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: quote.Total,
	}

	created, err := uc.bookingService.Create(ctx, req.Session, booking)
	if err != nil {
		if errors.Is(err, bookings.ErrUnauthenticated) {
			return nil, ErrUnauthenticated
		}
		if errors.Is(err, bookings.ErrSaveFailed) {
			uc.logger.Warn("CreateBooking: save failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d, total=%.2f (%d days x %.2f)",
		created.ID, quote.Total, quote.Days, vehicle.DailyRate)

	return &Response{
		ID:        created.ID,
		CarID:     created.CarID,
		UserEmail: created.UserEmail,
		StartDate: created.StartDate,
		EndDate:   created.EndDate,
		Days:      quote.Days,
		DailyRate: vehicle.DailyRate,
		Total:     created.TotalPrice,
		Status:    string(created.Status),
	}, nil
}
