package availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityRepository

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	List(ctx context.Context, userID int64) ([]*domain.Availability, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.Availability, error)
	Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error)
	Update(ctx context.Context, a *domain.Availability) (*domain.Availability, error)
	Delete(ctx context.Context, userID, id int64) error
	ClearDefault(ctx context.Context, userID int64, exceptID *int64) error
	GetSchedules(ctx context.Context, availabilityIDs []int64) (map[int64][]domain.WeeklySchedule, error)
	ReplaceSchedules(ctx context.Context, availabilityID int64, schedules []domain.WeeklySchedule) ([]domain.WeeklySchedule, error)
	GetOverrides(ctx context.Context, availabilityIDs []int64) (map[int64][]domain.DateOverride, error)
	UpsertOverride(ctx context.Context, o *domain.DateOverride) (*domain.DateOverride, bool, error)
	DeleteOverride(ctx context.Context, userID, availabilityID, overrideID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
