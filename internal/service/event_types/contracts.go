package event_types

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventTypeRepository

// EventTypeRepository интерфейс репозитория типов событий
type EventTypeRepository interface {
	List(ctx context.Context, userID int64, activeOnly bool) ([]*domain.EventType, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.EventType, error)
	SlugExists(ctx context.Context, userID int64, slug string, excludeID *int64) (bool, error)
	Create(ctx context.Context, et *domain.EventType) (*domain.EventType, error)
	Update(ctx context.Context, et *domain.EventType) (*domain.EventType, error)
	Delete(ctx context.Context, userID, id int64) error
	GetQuestions(ctx context.Context, eventTypeIDs []int64) (map[int64][]domain.Question, error)
	ReplaceQuestions(ctx context.Context, eventTypeID int64, questions []domain.Question) ([]domain.Question, error)
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
