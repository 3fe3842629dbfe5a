package create_availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityService

type AvailabilityService interface {
	Create(ctx context.Context, hostID int64, req *models.CreateAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
