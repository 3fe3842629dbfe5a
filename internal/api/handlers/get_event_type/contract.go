package get_event_type

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventTypeService

type EventTypeService interface {
	Get(ctx context.Context, hostID, id int64) (*models.EventTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
