package create_booking

import "errors"

var (
	// ErrEventTypeNotFound возвращается, когда тип события не найден или выключен
	ErrEventTypeNotFound = errors.New("create_booking: event type not found")

	// ErrSlotUnavailable возвращается, когда интервал пересекается с подтвержденным бронированием
	// или параллельная транзакция заняла его раньше
	ErrSlotUnavailable = errors.New("create_booking: slot unavailable")

	// ErrStartInPast возвращается при попытке забронировать уже начавшийся интервал
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
