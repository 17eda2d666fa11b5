package authservice

import "errors"

var (
	// ErrTokenInvalid возвращается, когда токен не распознан AuthService
	ErrTokenInvalid = errors.New("authservice client: token invalid")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
