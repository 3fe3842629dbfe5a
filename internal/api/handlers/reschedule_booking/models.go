package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	rescheduleBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	StartTime string `json:"start_time" validate:"required"` // RFC3339
	EndTime   string `json:"end_time" validate:"required"`   // RFC3339
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	*models.BookingResponse
	PreviousStartTime string `json:"previous_start_time"`
	PreviousEndTime   string `json:"previous_end_time"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(hostID int64, uid string) (*rescheduleBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		HostID:    hostID,
		UID:       uid,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		BookingResponse:   models.FromDomainBookingDetails(resp.Booking),
		PreviousStartTime: resp.Previous.Start.UTC().Format(time.RFC3339),
		PreviousEndTime:   resp.Previous.End.UTC().Format(time.RFC3339),
	}
}
