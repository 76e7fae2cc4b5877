package authprovider

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("authprovider client: invalid credentials")

	// ErrUnauthorized возвращается, когда провайдер отклонил токен сессии
	ErrUnauthorized = errors.New("authprovider client: unauthorized")

	// ErrAuth возвращается при прочих ошибках провайдера
	// Сообщение провайдера пробрасывается как есть для показа пользователю
	ErrAuth = errors.New("authprovider client: auth error")

	// ErrUploadFailed возвращается при ошибке загрузки файла в хранилище
	ErrUploadFailed = errors.New("authprovider client: upload failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("authprovider client: invalid response")
)
