package get_event_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
)

const (
	msgInvalidID = "invalid event type id"
	msgNotFound  = "event type not found"
)

type Handler struct {
	service EventTypeService
	logger  Logger
}

func NewHandler(service EventTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/event-types/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("GET /event-types/{id} - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /event-types/{id} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	eventType, err := h.service.Get(r.Context(), hostID, id)
	if err != nil {
		switch {
		case errors.Is(err, event_types.ErrEventTypeNotFound):
			h.logger.Warn("GET /event-types/{id} - Event type not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /event-types/{id} - Failed to get event type: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, eventType)
}
