package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на перенос бронирования
type Request struct {
	HostID    int64
	UID       string
	StartTime time.Time
	EndTime   time.Time
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	Booking  *domain.BookingDetails
	Previous domain.Interval
}
