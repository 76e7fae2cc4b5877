package session

import "errors"

var (
	// ErrUnauthenticated возвращается, когда токен не соответствует
	// ни одной действующей сессии
	ErrUnauthenticated = errors.New("session: unauthenticated")

	// ErrInternal возвращается при внутренних ошибках хранилища сессий
	ErrInternal = errors.New("session: internal error")
)
