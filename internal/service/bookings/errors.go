package bookings

import "errors"

var (
	// ErrUnauthenticated возвращается, когда операция требует входа
	ErrUnauthenticated = errors.New("bookings: unauthenticated")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бронирования
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrCancelPending возвращается при повторной отмене,
	// пока предыдущая ещё не завершилась
	ErrCancelPending = errors.New("bookings: cancel already pending")

	// ErrSaveFailed возвращается, когда внешний API отклонил мутацию
	ErrSaveFailed = errors.New("bookings: save failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
