package get_public_profile

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
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_public_profile/mocks"
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
		username   string
		setupMock  func(s *mocks.UserService)
		wantStatus int
		wantError  string
	}{
		{
			name:     "profile with active event types",
			username: "alice",
			setupMock: func(s *mocks.UserService) {
				s.On("GetPublicProfile", mock.Anything, "alice").Return(&models.PublicProfileResponse{
					User:       models.PublicUser{ID: 1, Name: "Alice", Username: "alice", Timezone: "UTC"},
					EventTypes: []models.PublicEventType{{ID: 5, Slug: "intro", Duration: 30}},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:     "unknown username",
			username: "bob",
			setupMock: func(s *mocks.UserService) {
				s.On("GetPublicProfile", mock.Anything, "bob").
					Return(nil, fmt.Errorf("%w: username=bob", users.ErrUserNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  msgNotFound,
		},
		{
			name:     "store failure",
			username: "alice",
			setupMock: func(s *mocks.UserService) {
				s.On("GetPublicProfile", mock.Anything, "alice").Return(nil, users.ErrInternal)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewUserService(t)
			tc.setupMock(svc)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/public/{username}", NewHandler(svc, newTestLogger(t)).Handle)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/public/"+tc.username, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantError, resp.Error)
				return
			}

			var resp models.PublicProfileResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "alice", resp.User.Username)
			require.Len(t, resp.EventTypes, 1)
			assert.Equal(t, "intro", resp.EventTypes[0].Slug)
		})
	}
}
