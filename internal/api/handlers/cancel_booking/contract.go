package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingService

type BookingService interface {
	Cancel(ctx context.Context, uid string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
