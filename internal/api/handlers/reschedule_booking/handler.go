package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	rescheduleBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "start_time and end_time must be RFC3339 timestamps"
	msgInvalidInput       = "invalid booking data"
	msgNotFound           = "booking not found"
	msgCannotReschedule   = "only confirmed bookings can be rescheduled"
	msgSlotUnavailable    = "slot unavailable"
	msgStartInPast        = "start time is in the past"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{uid}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("POST /bookings/{uid}/reschedule - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	uid := mux.Vars(r)["uid"]

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{uid}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/{uid}/reschedule - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(hostID, uid)
	if err != nil {
		h.logger.Warn("POST /bookings/{uid}/reschedule - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{uid}/reschedule - Booking not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("POST /bookings/{uid}/reschedule - Booking is not confirmed: uid=%s", uid)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings/{uid}/reschedule - Slot unavailable: uid=%s, start=%s", uid, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotUnavailable)

		case errors.Is(err, rescheduleBooking.ErrStartInPast):
			h.logger.Warn("POST /bookings/{uid}/reschedule - Start in past: uid=%s, start=%s", uid, req.StartTime)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{uid}/reschedule - Rejected: %v", err)
			handlers.RespondBadRequest(w, handlers.ClientMessage(err, rescheduleBooking.ErrInvalidInput, msgInvalidInput))

		default:
			h.logger.Error("POST /bookings/{uid}/reschedule - Failed to reschedule booking: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{uid}/reschedule - Booking rescheduled: uid=%s, start=%s", uid, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
