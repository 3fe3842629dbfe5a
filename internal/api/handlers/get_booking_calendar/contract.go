package get_booking_calendar

import "context"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingService

type BookingService interface {
	Calendar(ctx context.Context, uid string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
