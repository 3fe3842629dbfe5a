package delete_event_type

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
	msgDeleted   = "event type deleted"
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

// Handle DELETE /api/v1/event-types/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("DELETE /event-types/{id} - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /event-types/{id} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), hostID, id); err != nil {
		switch {
		case errors.Is(err, event_types.ErrEventTypeNotFound):
			h.logger.Warn("DELETE /event-types/{id} - Event type not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /event-types/{id} - Failed to delete event type: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /event-types/{id} - Event type deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgDeleted})
}
