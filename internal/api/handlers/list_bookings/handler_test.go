package list_bookings

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_bookings/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
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

func TestHandler_Handle_PassesFilter(t *testing.T) {
	t.Parallel()

	svc := mocks.NewBookingService(t)
	svc.On("List", mock.Anything, int64(1), mock.MatchedBy(func(req *models.ListBookingsRequest) bool {
		return req.Status != nil && *req.Status == "confirmed" && req.Type == "upcoming"
	})).Return([]*models.BookingResponse{{UID: "a"}, {UID: "b"}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?status=confirmed&type=upcoming", nil)
	r = r.WithContext(middleware.WithHostID(r.Context(), 1))
	rec := httptest.NewRecorder()

	NewHandler(svc, newTestLogger(t)).Handle(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestHandler_Handle_InvalidFilter(t *testing.T) {
	t.Parallel()

	svc := mocks.NewBookingService(t)
	svc.On("List", mock.Anything, int64(1), mock.MatchedBy(func(req *models.ListBookingsRequest) bool {
		return req.Status == nil && req.Type == "someday"
	})).Return(nil, fmt.Errorf("%w: unknown type %q", bookings.ErrInvalidInput, "someday"))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?type=someday", nil)
	r = r.WithContext(middleware.WithHostID(r.Context(), 1))
	rec := httptest.NewRecorder()

	NewHandler(svc, newTestLogger(t)).Handle(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, `unknown type "someday"`, resp.Error)
}
