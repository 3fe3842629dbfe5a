package notifier

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Mailer доставка одного письма
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Publisher

// Publisher публикация событий бронирований во внешнюю шину
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

// InviteBuilder сборка .ics приглашения
type InviteBuilder interface {
	Invite(details *domain.BookingDetails) string
}

// Metrics счетчики уведомлений
type Metrics interface {
	IncNotification(kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
