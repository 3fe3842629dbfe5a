package cancel_booking

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

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_booking/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
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
		uid        string
		setupMock  func(s *mocks.BookingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "cancelled",
			uid:  "abc",
			setupMock: func(s *mocks.BookingService) {
				s.On("Cancel", mock.Anything, "abc").Return(&models.BookingResponse{UID: "abc", Status: "cancelled"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "cancelled",
		},
		{
			name: "not found",
			uid:  "missing",
			setupMock: func(s *mocks.BookingService) {
				s.On("Cancel", mock.Anything, "missing").
					Return(nil, fmt.Errorf("%w: uid=missing", bookings.ErrBookingNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   msgNotFound,
		},
		{
			name: "store failure",
			uid:  "abc",
			setupMock: func(s *mocks.BookingService) {
				s.On("Cancel", mock.Anything, "abc").Return(nil, bookings.ErrInternal)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewBookingService(t)
			tc.setupMock(svc)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/bookings/{uid}/cancel", NewHandler(svc, newTestLogger(t)).Handle)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+tc.uid+"/cancel", nil))

			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantBody, resp["status"])
			} else {
				assert.Equal(t, tc.wantBody, resp["error"])
			}
		})
	}
}
