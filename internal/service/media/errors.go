package media

import "errors"

var (
	// ErrAccessDenied возвращается, когда загрузку выполняет не администратор
	ErrAccessDenied = errors.New("media: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("media: invalid input data")

	// ErrUploadFailed возвращается, когда хранилище отклонило загрузку
	ErrUploadFailed = errors.New("media: upload failed")
)
