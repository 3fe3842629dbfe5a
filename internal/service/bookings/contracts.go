package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRepository

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error)
	GetByUID(ctx context.Context, uid string) (*domain.Booking, error)
	GetDetailsByUID(ctx context.Context, uid string) (*domain.BookingDetails, error)
	GetAnswers(ctx context.Context, bookingIDs []int64) (map[int64][]domain.Answer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier

// Notifier асинхронная отправка уведомлений, вызов не блокируется
type Notifier interface {
	NotifyCancelled(details *domain.BookingDetails)
}

// CalendarExporter собирает .ics файл бронирования
type CalendarExporter interface {
	Export(details *domain.BookingDetails) string
}

// Metrics счетчики исходов записи бронирований
type Metrics interface {
	IncBooking(result string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
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
