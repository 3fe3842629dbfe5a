package update_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "user not found"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/user
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Error("PUT /user - host id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /user - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /user - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	user, err := h.service.Update(r.Context(), hostID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUsernameTaken), errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /user - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /user - User not found: host_id=%d", hostID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PUT /user - Failed to update user: host_id=%d, error=%v", hostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /user - User updated: host_id=%d, username=%s", hostID, user.Username)
	handlers.RespondJSON(w, http.StatusOK, user)
}
