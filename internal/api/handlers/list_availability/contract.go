package list_availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityService

type AvailabilityService interface {
	List(ctx context.Context, hostID int64) ([]*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
