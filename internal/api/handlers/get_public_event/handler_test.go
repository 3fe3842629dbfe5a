package get_public_event

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
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_public_event/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
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
		path       string
		setupMock  func(s *mocks.UserService)
		wantStatus int
		wantError  string
	}{
		{
			name: "event with questions",
			path: "/api/v1/public/alice/intro",
			setupMock: func(s *mocks.UserService) {
				s.On("GetPublicEvent", mock.Anything, "alice", "intro").Return(&models.PublicEventResponse{
					User:      models.PublicUser{ID: 1, Username: "alice"},
					EventType: models.PublicEventType{ID: 5, Slug: "intro", Duration: 30},
					Questions: []models.QuestionResponse{},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown host",
			path: "/api/v1/public/bob/intro",
			setupMock: func(s *mocks.UserService) {
				s.On("GetPublicEvent", mock.Anything, "bob", "intro").
					Return(nil, fmt.Errorf("%w: username=bob", users.ErrUserNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgUserNotFound,
		},
		{
			name: "inactive or unknown slug",
			path: "/api/v1/public/alice/hidden",
			setupMock: func(s *mocks.UserService) {
				s.On("GetPublicEvent", mock.Anything, "alice", "hidden").
					Return(nil, fmt.Errorf("%w: slug=hidden", users.ErrEventTypeNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgEventTypeNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewUserService(t)
			tc.setupMock(svc)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/public/{username}/{slug}", NewHandler(svc, newTestLogger(t)).Handle)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantError, resp.Error)
				return
			}

			var resp models.PublicEventResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "intro", resp.EventType.Slug)
		})
	}
}
