package get_public_profile

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserService

type UserService interface {
	GetPublicProfile(ctx context.Context, username string) (*models.PublicProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
