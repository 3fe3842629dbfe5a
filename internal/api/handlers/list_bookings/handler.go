package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

const msgInvalidFilter = "invalid filter"

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

// Handle GET /api/v1/bookings
// Query params: status (confirmed|cancelled), type (upcoming|past|all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("GET /bookings - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()
	req := &models.ListBookingsRequest{Type: query.Get("type")}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	list, err := h.service.List(r.Context(), hostID, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, handlers.ClientMessage(err, bookings.ErrInvalidInput, msgInvalidFilter))
		default:
			h.logger.Error("GET /bookings - Failed to list bookings: host_id=%d, error=%v", hostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
