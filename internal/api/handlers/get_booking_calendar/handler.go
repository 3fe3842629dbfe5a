package get_booking_calendar

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const (
	msgNotFound = "booking not found"

	contentTypeCalendar = "text/calendar; charset=utf-8"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{uid}/calendar.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	calendar, err := h.service.Calendar(r.Context(), uid)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{uid}/calendar.ics - Booking not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /bookings/{uid}/calendar.ics - Failed to build calendar: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeCalendar)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "booking-"+uid+".ics"))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, calendar); err != nil {
		h.logger.Warn("GET /bookings/{uid}/calendar.ics - Failed to write response: uid=%s, error=%v", uid, err)
	}
}
