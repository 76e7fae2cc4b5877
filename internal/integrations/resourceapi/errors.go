package resourceapi

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена во внешнем API
	ErrNotFound = errors.New("resourceapi client: record not found")

	// ErrUnauthorized возвращается, когда внешний API отклонил учётные данные
	ErrUnauthorized = errors.New("resourceapi client: unauthorized")

	// ErrConflict возвращается, когда запись нарушает уникальность во внешнем API
	ErrConflict = errors.New("resourceapi client: record already exists")

	// ErrSaveFailed возвращается при любом другом не-2xx ответе внешнего API
	ErrSaveFailed = errors.New("resourceapi client: save failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resourceapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("resourceapi client: invalid response")
)
