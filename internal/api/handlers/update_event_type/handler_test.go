package update_event_type

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
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_event_type/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
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

	const validBody = `{"title":"Intro","slug":"intro","duration":45}`

	testCases := []struct {
		name       string
		id         string
		body       string
		setupMock  func(s *mocks.EventTypeService)
		wantStatus int
		wantError  string
	}{
		{
			name: "updated",
			id:   "5",
			body: validBody,
			setupMock: func(s *mocks.EventTypeService) {
				s.On("Update", mock.Anything, int64(1), int64(5), mock.MatchedBy(func(req *models.UpdateEventTypeRequest) bool {
					return req.Slug == "intro" && req.Duration != nil && *req.Duration == 45 && req.Questions == nil
				})).Return(&models.EventTypeResponse{ID: 5, Slug: "intro", Duration: 45}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown id",
			id:   "404",
			body: validBody,
			setupMock: func(s *mocks.EventTypeService) {
				s.On("Update", mock.Anything, int64(1), int64(404), mock.Anything).
					Return(nil, fmt.Errorf("%w: id=404", event_types.ErrEventTypeNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgNotFound,
		},
		{
			name: "slug taken by another event type",
			id:   "5",
			body: validBody,
			setupMock: func(s *mocks.EventTypeService) {
				s.On("Update", mock.Anything, int64(1), int64(5), mock.Anything).Return(nil, event_types.ErrDuplicateSlug)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  event_types.ErrDuplicateSlug.Error(),
		},
		{
			name:       "missing slug",
			id:         "5",
			body:       `{"title":"Intro"}`,
			setupMock:  func(s *mocks.EventTypeService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "slug is required",
		},
		{
			name:       "broken json",
			id:         "5",
			body:       `{"title":`,
			setupMock:  func(s *mocks.EventTypeService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidRequestBody,
		},
		{
			name:       "id is not a number",
			id:         "x",
			body:       validBody,
			setupMock:  func(s *mocks.EventTypeService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidID,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewEventTypeService(t)
			tc.setupMock(svc)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/event-types/{id}", NewHandler(svc, newTestLogger(t)).Handle)

			r := httptest.NewRequest(http.MethodPut, "/api/v1/event-types/"+tc.id, strings.NewReader(tc.body))
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
