package update_availability

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_availability/mocks"
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

	invalidTimezone := fmt.Errorf("%w: unknown timezone %q", availability.ErrInvalidInput, "Mars/Olympus")

	testCases := []struct {
		name       string
		id         string
		body       string
		setupMock  func(s *mocks.AvailabilityService)
		wantStatus int
		wantError  string
	}{
		{
			name: "made default",
			id:   "3",
			body: `{"is_default":true}`,
			setupMock: func(s *mocks.AvailabilityService) {
				s.On("Update", mock.Anything, int64(1), int64(3), mock.MatchedBy(func(req *models.UpdateAvailabilityRequest) bool {
					return req.IsDefault != nil && *req.IsDefault && req.Name == nil && req.Schedules == nil
				})).Return(&models.AvailabilityResponse{ID: 3, IsDefault: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown id",
			id:   "99",
			body: `{"name":"Evenings"}`,
			setupMock: func(s *mocks.AvailabilityService) {
				s.On("Update", mock.Anything, int64(1), int64(99), mock.Anything).
					Return(nil, fmt.Errorf("%w: id=99", availability.ErrAvailabilityNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgNotFound,
		},
		{
			name: "invalid timezone",
			id:   "3",
			body: `{"timezone":"Mars/Olympus"}`,
			setupMock: func(s *mocks.AvailabilityService) {
				s.On("Update", mock.Anything, int64(1), int64(3), mock.Anything).Return(nil, invalidTimezone)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  invalidTimezone.Error(),
		},
		{
			name:       "broken json",
			id:         "3",
			body:       `[`,
			setupMock:  func(s *mocks.AvailabilityService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidRequestBody,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAvailabilityService(t)
			tc.setupMock(svc)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/availability/{id}", NewHandler(svc, newTestLogger(t)).Handle)

			r := httptest.NewRequest(http.MethodPut, "/api/v1/availability/"+tc.id, strings.NewReader(tc.body))
			r = r.WithContext(middleware.WithHostID(r.Context(), 1))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, r)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantError, resp.Error)
			}
		})
	}
}
