package update_event_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
)

const (
	msgInvalidID          = "invalid event type id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "event type not found"
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

// Handle PUT /api/v1/event-types/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("PUT /event-types/{id} - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /event-types/{id} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateEventTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /event-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /event-types/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	eventType, err := h.service.Update(r.Context(), hostID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, event_types.ErrEventTypeNotFound):
			h.logger.Warn("PUT /event-types/{id} - Event type not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, event_types.ErrDuplicateSlug):
			h.logger.Warn("PUT /event-types/{id} - Duplicate slug: id=%d, slug=%s", id, req.Slug)
			handlers.RespondBadRequest(w, event_types.ErrDuplicateSlug.Error())
		case errors.Is(err, event_types.ErrInvalidInput):
			h.logger.Warn("PUT /event-types/{id} - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /event-types/{id} - Failed to update event type: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /event-types/{id} - Event type updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, eventType)
}
