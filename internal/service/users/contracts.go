package users

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRepository

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventTypeRepository

// EventTypeRepository интерфейс репозитория типов событий
type EventTypeRepository interface {
	List(ctx context.Context, userID int64, activeOnly bool) ([]*domain.EventType, error)
	GetBySlug(ctx context.Context, userID int64, slug string, activeOnly bool) (*domain.EventType, error)
	GetQuestions(ctx context.Context, eventTypeIDs []int64) (map[int64][]domain.Question, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
