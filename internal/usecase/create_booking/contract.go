package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventTypeRepository

// EventTypeRepository интерфейс репозитория типов событий
type EventTypeRepository interface {
	GetByID(ctx context.Context, userID, id int64) (*domain.EventType, error)
	GetQuestions(ctx context.Context, eventTypeIDs []int64) (map[int64][]domain.Question, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRepository

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	LockEventType(ctx context.Context, eventTypeID int64) error
	HasConflict(ctx context.Context, eventTypeID int64, start, end time.Time, excludeID *int64) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateAnswers(ctx context.Context, bookingID int64, answers []domain.Answer) error
	GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error)
	GetAnswers(ctx context.Context, bookingIDs []int64) (map[int64][]domain.Answer, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier

// Notifier асинхронная отправка уведомлений, вызов не блокируется
type Notifier interface {
	NotifyConfirmed(details *domain.BookingDetails)
}

// Metrics счетчики исходов записи бронирований
type Metrics interface {
	IncBooking(result string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
