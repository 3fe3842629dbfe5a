package create_event_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle POST /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("POST /event-types - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.CreateEventTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /event-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /event-types - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	eventType, err := h.service.Create(r.Context(), hostID, &req)
	if err != nil {
		switch {
		case errors.Is(err, event_types.ErrDuplicateSlug):
			h.logger.Warn("POST /event-types - Duplicate slug: host_id=%d, slug=%s", hostID, req.Slug)
			handlers.RespondBadRequest(w, event_types.ErrDuplicateSlug.Error())
		case errors.Is(err, event_types.ErrInvalidInput):
			h.logger.Warn("POST /event-types - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /event-types - Failed to create event type: host_id=%d, error=%v", hostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /event-types - Event type created: id=%d, slug=%s", eventType.ID, eventType.Slug)
	handlers.RespondJSON(w, http.StatusCreated, eventType)
}
