package get_user

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_user/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewUserService(t)
		svc.On("Get", mock.Anything, int64(1)).Return(&models.UserResponse{ID: 1, Username: "alice"}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
		rec := httptest.NewRecorder()
		NewHandler(svc, l).Handle(rec, r.WithContext(middleware.WithHostID(r.Context(), 1)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	})

	t.Run("not seeded", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewUserService(t)
		svc.On("Get", mock.Anything, int64(1)).Return(nil, users.ErrUserNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
		rec := httptest.NewRecorder()
		NewHandler(svc, l).Handle(rec, r.WithContext(middleware.WithHostID(r.Context(), 1)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
