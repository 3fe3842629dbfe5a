package upsert_override

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

const (
	msgInvalidID          = "invalid availability id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "availability not found"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/{id}/overrides
// Исключение на ту же дату заменяется, новое возвращается с 201
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("POST /availability/{id}/overrides - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	availabilityID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("POST /availability/{id}/overrides - %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.OverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/{id}/overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /availability/{id}/overrides - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	override, created, err := h.service.UpsertOverride(r.Context(), hostID, availabilityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("POST /availability/{id}/overrides - Availability not found: id=%d", availabilityID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /availability/{id}/overrides - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /availability/{id}/overrides - Failed to save override: availability_id=%d, error=%v", availabilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /availability/{id}/overrides - Override saved: availability_id=%d, date=%s, created=%t",
		availabilityID, override.Date, created)
	handlers.RespondJSON(w, status, override)
}
