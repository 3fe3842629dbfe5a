package reschedule_booking

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_booking/mocks"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

const testUID = "9d1f3e2a-6b8c-4f7d-a1e0-2c3b4d5e6f70"

var (
	fixedNow = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	oldStart = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	newStart = time.Date(2025, time.March, 4, 14, 0, 0, 0, time.UTC)
	newEnd   = newStart.Add(30 * time.Minute)
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedNow }

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func storedBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          42,
		UID:         testUID,
		EventTypeID: 7,
		StartTime:   oldStart,
		EndTime:     oldStart.Add(30 * time.Minute),
		Status:      status,
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		req       *Request
		mockSetup func(et *mocks.EventTypeRepository, br *mocks.BookingRepository, n *mocks.Notifier)
		wantErr   error
	}{
		{
			name: "success excludes the booking itself",
			req:  &Request{HostID: 1, UID: testUID, StartTime: newStart, EndTime: newEnd},
			mockSetup: func(et *mocks.EventTypeRepository, br *mocks.BookingRepository, n *mocks.Notifier) {
				br.On("GetByUID", mock.Anything, testUID).Return(storedBooking(domain.StatusConfirmed), nil)
				et.On("GetByID", mock.Anything, int64(1), int64(7)).Return(&domain.EventType{ID: 7, DurationMinutes: 30}, nil)
				br.On("LockEventType", mock.Anything, int64(7)).Return(nil)
				br.On("HasConflict", mock.Anything, int64(7), newStart, newEnd, ptr.Ptr(int64(42))).Return(false, nil)
				br.On("UpdateTimes", mock.Anything, int64(42), newStart, newEnd).Return(nil)
				br.On("GetDetailsByUID", mock.Anything, testUID).Return(&domain.BookingDetails{
					Booking: domain.Booking{ID: 42, UID: testUID, StartTime: newStart, EndTime: newEnd, Status: domain.StatusConfirmed},
				}, nil)
				br.On("GetAnswers", mock.Anything, []int64{42}).Return(map[int64][]domain.Answer{}, nil)
				n.On("NotifyRescheduled", mock.Anything, mock.MatchedBy(func(prev domain.Interval) bool {
					return prev.Start.Equal(oldStart)
				})).Return().Once()
			},
		},
		{
			name: "cancelled booking cannot move",
			req:  &Request{HostID: 1, UID: testUID, StartTime: newStart, EndTime: newEnd},
			mockSetup: func(et *mocks.EventTypeRepository, br *mocks.BookingRepository, n *mocks.Notifier) {
				br.On("GetByUID", mock.Anything, testUID).Return(storedBooking(domain.StatusCancelled), nil)
			},
			wantErr: ErrCannotReschedule,
		},
		{
			name: "target interval taken",
			req:  &Request{HostID: 1, UID: testUID, StartTime: newStart, EndTime: newEnd},
			mockSetup: func(et *mocks.EventTypeRepository, br *mocks.BookingRepository, n *mocks.Notifier) {
				br.On("GetByUID", mock.Anything, testUID).Return(storedBooking(domain.StatusConfirmed), nil)
				et.On("GetByID", mock.Anything, int64(1), int64(7)).Return(&domain.EventType{ID: 7}, nil)
				br.On("LockEventType", mock.Anything, int64(7)).Return(nil)
				br.On("HasConflict", mock.Anything, int64(7), newStart, newEnd, ptr.Ptr(int64(42))).Return(true, nil)
			},
			wantErr: ErrSlotUnavailable,
		},
		{
			name: "exclusion violation on update",
			req:  &Request{HostID: 1, UID: testUID, StartTime: newStart, EndTime: newEnd},
			mockSetup: func(et *mocks.EventTypeRepository, br *mocks.BookingRepository, n *mocks.Notifier) {
				br.On("GetByUID", mock.Anything, testUID).Return(storedBooking(domain.StatusConfirmed), nil)
				et.On("GetByID", mock.Anything, int64(1), int64(7)).Return(&domain.EventType{ID: 7}, nil)
				br.On("LockEventType", mock.Anything, int64(7)).Return(nil)
				br.On("HasConflict", mock.Anything, int64(7), newStart, newEnd, ptr.Ptr(int64(42))).Return(false, nil)
				br.On("UpdateTimes", mock.Anything, int64(42), newStart, newEnd).Return(&pq.Error{Code: "23P01"})
			},
			wantErr: ErrSlotUnavailable,
		},
		{
			name: "unknown uid",
			req:  &Request{HostID: 1, UID: testUID, StartTime: newStart, EndTime: newEnd},
			mockSetup: func(et *mocks.EventTypeRepository, br *mocks.BookingRepository, n *mocks.Notifier) {
				br.On("GetByUID", mock.Anything, testUID).Return(nil, bookingRepo.ErrBookingNotFound)
			},
			wantErr: ErrBookingNotFound,
		},
		{
			name:      "end before start",
			req:       &Request{HostID: 1, UID: testUID, StartTime: newEnd, EndTime: newStart},
			mockSetup: func(et *mocks.EventTypeRepository, br *mocks.BookingRepository, n *mocks.Notifier) {},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "moved into the past",
			req:       &Request{HostID: 1, UID: testUID, StartTime: fixedNow.Add(-time.Hour), EndTime: fixedNow},
			mockSetup: func(et *mocks.EventTypeRepository, br *mocks.BookingRepository, n *mocks.Notifier) {},
			wantErr:   ErrStartInPast,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			eventTypes := mocks.NewEventTypeRepository(t)
			bookings := mocks.NewBookingRepository(t)
			notifier := mocks.NewNotifier(t)
			tc.mockSetup(eventTypes, bookings, notifier)

			uc := NewUseCase(eventTypes, bookings, notifier, (*metrics.Metrics)(nil), passthroughTx{}, domain.GuardModeRaw, newTestLogger(t))
			uc.timeProvider = fixedClock{}

			resp, err := uc.Execute(context.Background(), tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.True(t, resp.Booking.StartTime.Equal(newStart))
			assert.True(t, resp.Previous.Start.Equal(oldStart))
		})
	}
}
