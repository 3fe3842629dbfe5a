package get_available_slots

import "errors"

var (
	// ErrHostNotFound возвращается, когда хост с таким username не найден
	ErrHostNotFound = errors.New("get_available_slots: host not found")

	// ErrEventTypeNotFound возвращается, когда активный тип события не найден
	ErrEventTypeNotFound = errors.New("get_available_slots: event type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
