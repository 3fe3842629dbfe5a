package get_user

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserService

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserService

type UserService interface {
	Get(ctx context.Context, hostID int64) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
