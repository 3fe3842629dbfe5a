package eventbus

import "errors"

var (
	// ErrConnect возвращается при ошибке подключения к NATS
	ErrConnect = errors.New("eventbus: failed to connect")

	// ErrPublish возвращается при ошибке публикации
	ErrPublish = errors.New("eventbus: failed to publish")
)
