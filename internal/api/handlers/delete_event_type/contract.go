package delete_event_type

import "context"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventTypeService

type EventTypeService interface {
	Delete(ctx context.Context, hostID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
