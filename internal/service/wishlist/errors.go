package wishlist

import "errors"

var (
	// ErrUnauthenticated возвращается, когда операция требует входа
	ErrUnauthenticated = errors.New("wishlist: unauthenticated")

	// ErrTogglePending возвращается при повторном переключении,
	// пока предыдущее ещё не завершилось
	ErrTogglePending = errors.New("wishlist: toggle already pending")

	// ErrSaveFailed возвращается, когда внешний API отклонил мутацию;
	// локальное состояние к этому моменту откачено
	ErrSaveFailed = errors.New("wishlist: save failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wishlist: internal error")
)
