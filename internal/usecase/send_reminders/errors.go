package send_reminders

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запуска
	ErrInvalidInput = errors.New("send_reminders: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_reminders: internal error")
)
