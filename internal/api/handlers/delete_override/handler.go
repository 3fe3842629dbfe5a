package delete_override

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
)

const (
	msgInvalidID           = "invalid availability id"
	msgInvalidOverrideID   = "invalid override id"
	msgAvailabilityMissing = "availability not found"
	msgOverrideMissing     = "override not found"
	msgDeleted             = "override deleted"
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

// Handle DELETE /api/v1/availability/{id}/overrides/{overrideId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("DELETE /availability/{id}/overrides/{overrideId} - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	availabilityID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /availability/{id}/overrides/{overrideId} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	overrideID, err := handlers.PathInt64(r, "overrideId")
	if err != nil {
		h.logger.Warn("DELETE /availability/{id}/overrides/{overrideId} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	if err := h.service.DeleteOverride(r.Context(), hostID, availabilityID, overrideID); err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("DELETE /availability/{id}/overrides/{overrideId} - Availability not found: id=%d", availabilityID)
			handlers.RespondNotFound(w, msgAvailabilityMissing)
		case errors.Is(err, availability.ErrOverrideNotFound):
			h.logger.Warn("DELETE /availability/{id}/overrides/{overrideId} - Override not found: id=%d", overrideID)
			handlers.RespondNotFound(w, msgOverrideMissing)
		default:
			h.logger.Error("DELETE /availability/{id}/overrides/{overrideId} - Failed to delete override: id=%d, error=%v", overrideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/{id}/overrides/{overrideId} - Override deleted: id=%d", overrideID)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgDeleted})
}
