package update_user

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserService

type UserService interface {
	Update(ctx context.Context, hostID int64, req *models.UpdateUserRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
