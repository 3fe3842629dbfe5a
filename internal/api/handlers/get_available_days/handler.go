package get_available_days

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
)

const (
	msgMissingParams     = "event_type_slug, host_username and month are required"
	msgInvalidMonth      = "invalid month format, expected YYYY-MM"
	msgInvalidInput      = "invalid query"
	msgHostNotFound      = "user not found"
	msgEventTypeNotFound = "event type not found"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability-days
// Query params: event_type_slug, host_username, month (YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	username := query.Get("host_username")
	slug := query.Get("event_type_slug")
	month := query.Get("month")

	if username == "" || slug == "" || month == "" {
		h.logger.Warn("GET /availability-days - Missing parameters: username=%q, slug=%q, month=%q", username, slug, month)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(username, slug, month)
	if err != nil {
		h.logger.Warn("GET /availability-days - Invalid month format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrHostNotFound):
			h.logger.Warn("GET /availability-days - Host not found: username=%s", username)
			handlers.RespondNotFound(w, msgHostNotFound)

		case errors.Is(err, getAvailableDays.ErrEventTypeNotFound):
			h.logger.Warn("GET /availability-days - Event type not found: username=%s, slug=%s", username, slug)
			handlers.RespondNotFound(w, msgEventTypeNotFound)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /availability-days - Rejected: %v", err)
			handlers.RespondBadRequest(w, handlers.ClientMessage(err, getAvailableDays.ErrInvalidInput, msgInvalidInput))

		default:
			h.logger.Error("GET /availability-days - Failed to get days: username=%s, slug=%s, month=%s, error=%v",
				username, slug, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability-days - Days retrieved: username=%s, slug=%s, month=%s, days_count=%d",
		username, slug, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
