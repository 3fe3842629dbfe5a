package reschedule_booking

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/reschedule_booking/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	rescheduleBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

const uid = "c1d7a3f0-2b9e-4a51-8f0d-6e4b2c9a7d10"

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{uid}/reschedule", h.Handle).Methods(http.MethodPost)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+uid+"/reschedule", strings.NewReader(body))
	r = r.WithContext(middleware.WithHostID(r.Context(), 1))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	oldStart := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	newStart := time.Date(2025, 3, 4, 11, 0, 0, 0, time.UTC)
	body := `{"start_time":"2025-03-04T11:00:00Z","end_time":"2025-03-04T11:30:00Z"}`

	testCases := []struct {
		name       string
		body       string
		setupMock  func(uc *mocks.RescheduleBookingUseCase)
		wantStatus int
		wantError  string
	}{
		{
			name: "rescheduled",
			body: body,
			setupMock: func(uc *mocks.RescheduleBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *rescheduleBooking.Request) bool {
					return req.UID == uid && req.StartTime.Equal(newStart)
				})).Return(&rescheduleBooking.Response{
					Booking: &domain.BookingDetails{Booking: domain.Booking{
						UID:       uid,
						StartTime: newStart,
						EndTime:   newStart.Add(30 * time.Minute),
						Status:    domain.StatusConfirmed,
					}},
					Previous: domain.Interval{Start: oldStart, End: oldStart.Add(30 * time.Minute)},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cancelled booking",
			body: body,
			setupMock: func(uc *mocks.RescheduleBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, rescheduleBooking.ErrCannotReschedule)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  msgCannotReschedule,
		},
		{
			name: "slot taken",
			body: body,
			setupMock: func(uc *mocks.RescheduleBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, rescheduleBooking.ErrSlotUnavailable)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "slot unavailable",
		},
		{
			name: "unknown uid",
			body: body,
			setupMock: func(uc *mocks.RescheduleBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, rescheduleBooking.ErrBookingNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgNotFound,
		},
		{
			name:       "missing end time",
			body:       `{"start_time":"2025-03-04T11:00:00Z"}`,
			setupMock:  func(uc *mocks.RescheduleBookingUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "end_time is required",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := mocks.NewRescheduleBookingUseCase(t)
			tc.setupMock(uc)

			rec := serve(NewHandler(uc, newTestLogger(t)), tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantError, resp.Error)
				return
			}

			var resp map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "2025-03-04T11:00:00Z", resp["start_time"])
			assert.Equal(t, "2025-03-03T09:00:00Z", resp["previous_start_time"])
		})
	}
}
