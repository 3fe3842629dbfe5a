package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrEventTypeNotFound возвращается, когда тип события не найден или неактивен
	ErrEventTypeNotFound = errors.New("event type not found")

	// ErrUsernameTaken возвращается, когда username занят
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
