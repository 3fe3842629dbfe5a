package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const msgNotFound = "booking not found"

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

// Handle POST /api/v1/bookings/{uid}/cancel
// Повторная отмена возвращает бронирование без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	booking, err := h.service.Cancel(r.Context(), uid)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{uid}/cancel - Booking not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("POST /bookings/{uid}/cancel - Failed to cancel booking: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{uid}/cancel - Booking cancelled: uid=%s", uid)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
