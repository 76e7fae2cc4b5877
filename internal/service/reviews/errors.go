package reviews

import "errors"

var (
	// ErrUnauthenticated возвращается, когда операция требует входа
	ErrUnauthenticated = errors.New("reviews: unauthenticated")

	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("reviews: review not found")

	// ErrAccessDenied возвращается, когда пользователь не автор отзыва
	// и не администратор
	ErrAccessDenied = errors.New("reviews: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reviews: invalid input data")

	// ErrDeletePending возвращается при повторном удалении,
	// пока предыдущее ещё не завершилось
	ErrDeletePending = errors.New("reviews: delete already pending")

	// ErrSaveFailed возвращается, когда внешний API отклонил мутацию;
	// локальный список к этому моменту не изменён
	ErrSaveFailed = errors.New("reviews: save failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews: internal error")
)
