package get_public_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users"
)

const (
	msgUserNotFound      = "user not found"
	msgEventTypeNotFound = "event type not found"
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

// Handle GET /api/v1/public/{username}/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username, slug := vars["username"], vars["slug"]

	event, err := h.service.GetPublicEvent(r.Context(), username, slug)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /public/{username}/{slug} - User not found: username=%s", username)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, users.ErrEventTypeNotFound):
			h.logger.Warn("GET /public/{username}/{slug} - Event type not found: username=%s, slug=%s", username, slug)
			handlers.RespondNotFound(w, msgEventTypeNotFound)
		default:
			h.logger.Error("GET /public/{username}/{slug} - Failed to get event: username=%s, slug=%s, error=%v", username, slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, event)
}
