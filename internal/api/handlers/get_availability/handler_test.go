package get_availability

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability/mocks"
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
		id         string
		setupMock  func(s *mocks.AvailabilityService)
		wantStatus int
		wantError  string
	}{
		{
			name: "found",
			id:   "3",
			setupMock: func(s *mocks.AvailabilityService) {
				s.On("Get", mock.Anything, int64(1), int64(3)).
					Return(&models.AvailabilityResponse{ID: 3, Timezone: "Europe/Berlin"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown id",
			id:   "99",
			setupMock: func(s *mocks.AvailabilityService) {
				s.On("Get", mock.Anything, int64(1), int64(99)).
					Return(nil, fmt.Errorf("%w: id=99", availability.ErrAvailabilityNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgNotFound,
		},
		{
			name:       "negative id",
			id:         "-1",
			setupMock:  func(s *mocks.AvailabilityService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidID,
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

			r := httptest.NewRequest(http.MethodGet, "/api/v1/availability/"+tc.id, nil)
			r = r.WithContext(middleware.WithHostID(r.Context(), 1))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, r)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantError, resp.Error)
				return
			}

			var resp models.AvailabilityResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "Europe/Berlin", resp.Timezone)
		})
	}
}
