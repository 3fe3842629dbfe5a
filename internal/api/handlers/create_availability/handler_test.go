package create_availability

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_availability/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
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

	testCases := []struct {
		name       string
		body       string
		setupMock  func(s *mocks.AvailabilityService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"name":"Work","timezone":"Europe/Berlin","is_default":true,"schedules":[{"day_of_week":1,"start_time":"09:00","end_time":"17:00"}]}`,
			setupMock: func(s *mocks.AvailabilityService) {
				s.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(req *models.CreateAvailabilityRequest) bool {
					return req.IsDefault && len(req.Schedules) == 1
				})).Return(&models.AvailabilityResponse{ID: 4, Name: "Work", IsDefault: true}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"is_default":true`,
		},
		{
			name: "unknown timezone",
			body: `{"timezone":"Mars/Olympus"}`,
			setupMock: func(s *mocks.AvailabilityService) {
				s.On("Create", mock.Anything, int64(1), mock.Anything).
					Return(nil, fmt.Errorf("%w: unknown timezone %q", availability.ErrInvalidInput, "Mars/Olympus"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "unknown timezone",
		},
		{
			name:       "day of week out of range",
			body:       `{"schedules":[{"day_of_week":7,"start_time":"09:00","end_time":"17:00"}]}`,
			setupMock:  func(s *mocks.AvailabilityService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAvailabilityService(t)
			tc.setupMock(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/availability", strings.NewReader(tc.body))
			r = r.WithContext(middleware.WithHostID(r.Context(), 1))
			rec := httptest.NewRecorder()

			NewHandler(svc, newTestLogger(t)).Handle(rec, r)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}
