package smtp

import "errors"

var (
	// ErrInvalidMessage возвращается, если письмо нельзя собрать
	ErrInvalidMessage = errors.New("smtp client: invalid message")

	// ErrSend возвращается при ошибке доставки
	ErrSend = errors.New("smtp client: send failed")
)
