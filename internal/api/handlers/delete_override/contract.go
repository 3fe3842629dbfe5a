package delete_override

import "context"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityService

type AvailabilityService interface {
	DeleteOverride(ctx context.Context, hostID, availabilityID, overrideID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
