package create_booking

import "errors"

var (
	// ErrUnauthenticated возвращается, когда бронирование создается без входа
	ErrUnauthenticated = errors.New("create_booking: unauthenticated")

	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("create_booking: car not found")

	// ErrCarUnavailable возвращается, когда автомобиль недоступен для аренды
	ErrCarUnavailable = errors.New("create_booking: car is not available")

	// ErrInvalidDateRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidDateRange = errors.New("create_booking: end date must be after start date")

	// ErrDateInPast возвращается, когда дата начала уже прошла
	ErrDateInPast = errors.New("create_booking: start date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSaveFailed возвращается, когда внешний API отклонил бронирование
	ErrSaveFailed = errors.New("create_booking: save failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
