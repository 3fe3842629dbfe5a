package mailersend

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailersend client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе API
	ErrInvalidResponse = errors.New("mailersend client: invalid response")
)
