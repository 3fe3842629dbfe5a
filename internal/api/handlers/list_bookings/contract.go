package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingService

type BookingService interface {
	List(ctx context.Context, hostID int64, req *models.ListBookingsRequest) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
