package send_reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRepository

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetDueReminders(ctx context.Context, from, to time.Time) ([]*domain.BookingDetails, error)
	MarkReminderSent(ctx context.Context, id int64, at time.Time) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier

// Notifier интерфейс очереди уведомлений
type Notifier interface {
	NotifyReminder(details *domain.BookingDetails)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
