package get_available_days

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_days/mocks"
	getAvailableDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	uc := mocks.NewGetAvailableDaysUseCase(t)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableDays.Request) bool {
		return req.HostUsername == "alice" && req.EventTypeSlug == "intro" &&
			req.Month.Year() == 2025 && req.Month.Month() == time.March
	})).Return(&getAvailableDays.Response{
		Month:    time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
		Timezone: "Europe/Berlin",
		Days: []time.Time{
			time.Date(2025, 3, 3, 0, 0, 0, 0, loc),
			time.Date(2025, 3, 5, 0, 0, 0, 0, loc),
		},
	}, nil)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/availability-days?event_type_slug=intro&host_username=alice&month=2025-03", nil)
	NewHandler(uc, newTestLogger(t)).Handle(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailableDaysResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2025-03", resp.Month)
	assert.Equal(t, "Europe/Berlin", resp.Timezone)
	assert.Equal(t, []string{"2025-03-03", "2025-03-05"}, resp.Days)
}

func TestHandler_Handle_BadMonth(t *testing.T) {
	t.Parallel()

	uc := mocks.NewGetAvailableDaysUseCase(t)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/availability-days?event_type_slug=intro&host_username=alice&month=March", nil)
	NewHandler(uc, newTestLogger(t)).Handle(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidMonth)
}
