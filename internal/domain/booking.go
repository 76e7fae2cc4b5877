package domain

import "github.com/m04kA/SURA-RentalService/pkg/types"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
)

// Booking represents a vehicle reservation
// Отмена моделируется удалением записи во внешнем API, отдельного
// статуса cancelled нет
type Booking struct {
	ID        int64
	CarID     int64
	UserEmail string
	StartDate types.DateString
	EndDate   types.DateString

	// TotalPrice фиксируется в момент создания (daily_rate * дни)
	// и никогда не пересчитывается клиентом задним числом
	TotalPrice float64
	Status     BookingStatus
}

// IsOwnedBy returns true if the booking belongs to the given identity
func (b *Booking) IsOwnedBy(email string) bool {
	return b.UserEmail == email
}

// CanBeCancelledBy returns true if the given identity may cancel the booking
// Отменить бронирование может только его владелец
func (b *Booking) CanBeCancelledBy(email string) bool {
	return b.IsOwnedBy(email)
}

// IsConfirmed returns true if the booking has been confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}
