package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingParams     = "event_type_slug, host_username and date are required"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput      = "invalid query"
	msgHostNotFound      = "user not found"
	msgEventTypeNotFound = "event type not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability-slots
// Query params: event_type_slug, host_username, date (YYYY-MM-DD)
// Публичный вариант GET /api/v1/public/{username}/{slug}/slots?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	params := readParams(r)
	if params.username == "" || params.slug == "" || params.date == "" {
		h.logger.Warn("GET /availability-slots - Missing parameters: username=%q, slug=%q, date=%q",
			params.username, params.slug, params.date)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := params.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /availability-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrHostNotFound):
			h.logger.Warn("GET /availability-slots - Host not found: username=%s", params.username)
			handlers.RespondNotFound(w, msgHostNotFound)

		case errors.Is(err, getAvailableSlots.ErrEventTypeNotFound):
			h.logger.Warn("GET /availability-slots - Event type not found: username=%s, slug=%s", params.username, params.slug)
			handlers.RespondNotFound(w, msgEventTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability-slots - Rejected: %v", err)
			handlers.RespondBadRequest(w, handlers.ClientMessage(err, getAvailableSlots.ErrInvalidInput, msgInvalidInput))

		default:
			h.logger.Error("GET /availability-slots - Failed to get slots: username=%s, slug=%s, date=%s, error=%v",
				params.username, params.slug, params.date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability-slots - Slots retrieved: username=%s, slug=%s, date=%s, slots_count=%d",
		params.username, params.slug, params.date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
