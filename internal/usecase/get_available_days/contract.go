package get_available_days

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRepository

// UserRepository интерфейс репозитория хостов
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventTypeRepository

// EventTypeRepository интерфейс репозитория типов событий
type EventTypeRepository interface {
	GetBySlug(ctx context.Context, userID int64, slug string, activeOnly bool) (*domain.EventType, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityRepository

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	GetDefault(ctx context.Context, userID int64) (*domain.Availability, error)
	GetSchedules(ctx context.Context, availabilityIDs []int64) (map[int64][]domain.WeeklySchedule, error)
	GetOverridesInRange(ctx context.Context, availabilityID int64, from, to time.Time) ([]domain.DateOverride, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRepository

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedByEventType(ctx context.Context, eventTypeID int64, from, to time.Time) ([]*domain.Booking, error)
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
