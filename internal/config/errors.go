package config

import "errors"

// Провайдеры почты
const (
	MailProviderMailerSend = "mailersend"
	MailProviderSMTP       = "smtp"
)

var (
	// ErrLoad ошибка чтения конфигурации
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid некорректное значение в конфигурации
	ErrInvalid = errors.New("config: invalid value")
)
