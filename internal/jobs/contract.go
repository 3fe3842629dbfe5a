package jobs

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/usecase/send_reminders"
)

// ReminderUseCase проход рассылки напоминаний
type ReminderUseCase interface {
	Execute(ctx context.Context, req *send_reminders.Request) (*send_reminders.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
