package get_available_slots

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots/mocks"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func newRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/availability-slots", h.Handle).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/public/{username}/{slug}/slots", h.Handle).Methods(http.MethodGet)
	return router
}

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	slotStart := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	matchReq := mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.HostUsername == "alice" && req.EventTypeSlug == "intro" && req.Date.Equal(date)
	})

	testCases := []struct {
		name       string
		url        string
		setupMock  func(uc *mocks.GetAvailableSlotsUseCase)
		wantStatus int
		wantError  string
		wantSlots  int
	}{
		{
			name: "query variant",
			url:  "/api/v1/availability-slots?event_type_slug=intro&host_username=alice&date=2025-03-03",
			setupMock: func(uc *mocks.GetAvailableSlotsUseCase) {
				uc.On("Execute", mock.Anything, matchReq).Return(&getAvailableSlots.Response{
					Date:     date,
					Timezone: "UTC",
					Slots: []getAvailableSlots.Slot{
						{Time: "09:00", Start: slotStart, End: slotStart.Add(30 * time.Minute)},
						{Time: "09:15", Start: slotStart.Add(15 * time.Minute), End: slotStart.Add(45 * time.Minute)},
					},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantSlots:  2,
		},
		{
			name: "public page variant",
			url:  "/api/v1/public/alice/intro/slots?date=2025-03-03",
			setupMock: func(uc *mocks.GetAvailableSlotsUseCase) {
				uc.On("Execute", mock.Anything, matchReq).Return(&getAvailableSlots.Response{
					Date:     date,
					Timezone: "UTC",
					Slots:    []getAvailableSlots.Slot{},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantSlots:  0,
		},
		{
			name:       "missing date",
			url:        "/api/v1/availability-slots?event_type_slug=intro&host_username=alice",
			setupMock:  func(uc *mocks.GetAvailableSlotsUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantError:  msgMissingParams,
		},
		{
			name:       "bad date",
			url:        "/api/v1/availability-slots?event_type_slug=intro&host_username=alice&date=03-03-2025",
			setupMock:  func(uc *mocks.GetAvailableSlotsUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidDate,
		},
		{
			name: "unknown host",
			url:  "/api/v1/availability-slots?event_type_slug=intro&host_username=alice&date=2025-03-03",
			setupMock: func(uc *mocks.GetAvailableSlotsUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrHostNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgHostNotFound,
		},
		{
			name: "inactive event type",
			url:  "/api/v1/public/alice/intro/slots?date=2025-03-03",
			setupMock: func(uc *mocks.GetAvailableSlotsUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrEventTypeNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgEventTypeNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := mocks.NewGetAvailableSlotsUseCase(t)
			tc.setupMock(uc)

			rec := httptest.NewRecorder()
			newRouter(NewHandler(uc, newTestLogger(t))).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.url, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantError, resp.Error)
				return
			}

			var resp AvailableSlotsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "2025-03-03", resp.Date)
			require.Len(t, resp.Slots, tc.wantSlots)
			if tc.wantSlots > 0 {
				assert.Equal(t, "09:00", resp.Slots[0].Time)
				assert.Equal(t, "2025-03-03T09:00:00Z", resp.Slots[0].Start)
				assert.Equal(t, "2025-03-03T09:30:00Z", resp.Slots[0].End)
			}
		})
	}
}
