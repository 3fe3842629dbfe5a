package bookings

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

const testUID = "2b7c6c4e-3f0a-4a4e-9a51-6f0f3c1d8e11"

var fixedNow = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedNow }

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func newService(t *testing.T, repo BookingRepository, notifier Notifier) *Service {
	t.Helper()
	return NewService(
		repo,
		notifier,
		calendar.NewBuilder("-//test//EN", "example.com"),
		(*metrics.Metrics)(nil),
		passthroughTx{},
		fixedClock{},
		newTestLogger(t),
	)
}

func details(status domain.BookingStatus) *domain.BookingDetails {
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          42,
			UID:         testUID,
			EventTypeID: 7,
			BookerName:  "Alice",
			BookerEmail: "alice@example.com",
			StartTime:   fixedNow.Add(time.Hour),
			EndTime:     fixedNow.Add(90 * time.Minute),
			Status:      status,
			CreatedAt:   fixedNow,
			UpdatedAt:   fixedNow,
		},
		EventTitle:      "Intro",
		DurationMinutes: 30,
		HostName:        "Bob",
		HostEmail:       "bob@example.com",
	}
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mockSetup  func(repo *mocks.BookingRepository, notifier *mocks.Notifier)
		wantErr    error
		wantStatus string
	}{
		{
			name: "confirmed booking is cancelled and notified",
			mockSetup: func(repo *mocks.BookingRepository, notifier *mocks.Notifier) {
				repo.On("GetByUID", mock.Anything, testUID).Return(&details(domain.StatusConfirmed).Booking, nil)
				repo.On("UpdateStatus", mock.Anything, int64(42), domain.StatusCancelled).Return(nil)
				repo.On("GetDetailsByUID", mock.Anything, testUID).Return(details(domain.StatusCancelled), nil)
				repo.On("GetAnswers", mock.Anything, []int64{42}).Return(map[int64][]domain.Answer{}, nil)
				notifier.On("NotifyCancelled", mock.MatchedBy(func(d *domain.BookingDetails) bool {
					return d.UID == testUID && d.IsCancelled()
				})).Return().Once()
			},
			wantStatus: "cancelled",
		},
		{
			name: "already cancelled booking is returned without a second notice",
			mockSetup: func(repo *mocks.BookingRepository, notifier *mocks.Notifier) {
				repo.On("GetByUID", mock.Anything, testUID).Return(&details(domain.StatusCancelled).Booking, nil)
				repo.On("GetDetailsByUID", mock.Anything, testUID).Return(details(domain.StatusCancelled), nil)
				repo.On("GetAnswers", mock.Anything, []int64{42}).Return(map[int64][]domain.Answer{}, nil)
			},
			wantStatus: "cancelled",
		},
		{
			name: "unknown uid",
			mockSetup: func(repo *mocks.BookingRepository, notifier *mocks.Notifier) {
				repo.On("GetByUID", mock.Anything, testUID).Return(nil, bookingRepo.ErrBookingNotFound)
			},
			wantErr: ErrBookingNotFound,
		},
		{
			name: "update failure",
			mockSetup: func(repo *mocks.BookingRepository, notifier *mocks.Notifier) {
				repo.On("GetByUID", mock.Anything, testUID).Return(&details(domain.StatusConfirmed).Booking, nil)
				repo.On("UpdateStatus", mock.Anything, int64(42), domain.StatusCancelled).Return(errors.New("db down"))
			},
			wantErr: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewBookingRepository(t)
			notifier := mocks.NewNotifier(t)
			tc.mockSetup(repo, notifier)

			resp, err := newService(t, repo, notifier).Cancel(context.Background(), testUID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, resp)
				notifier.AssertNotCalled(t, "NotifyCancelled", mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.Status)
		})
	}
}

func TestService_Cancel_Twice(t *testing.T) {
	t.Parallel()

	repo := mocks.NewBookingRepository(t)
	notifier := mocks.NewNotifier(t)

	repo.On("GetByUID", mock.Anything, testUID).Return(&details(domain.StatusConfirmed).Booking, nil).Once()
	repo.On("UpdateStatus", mock.Anything, int64(42), domain.StatusCancelled).Return(nil).Once()
	repo.On("GetByUID", mock.Anything, testUID).Return(&details(domain.StatusCancelled).Booking, nil).Once()
	repo.On("GetDetailsByUID", mock.Anything, testUID).Return(details(domain.StatusCancelled), nil).Twice()
	repo.On("GetAnswers", mock.Anything, []int64{42}).Return(map[int64][]domain.Answer{}, nil).Twice()
	notifier.On("NotifyCancelled", mock.Anything).Return().Once()

	svc := newService(t, repo, notifier)

	first, err := svc.Cancel(context.Background(), testUID)
	require.NoError(t, err)
	second, err := svc.Cancel(context.Background(), testUID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	notifier.AssertNumberOfCalls(t, "NotifyCancelled", 1)
}

func TestService_List(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		req        *models.ListBookingsRequest
		wantFilter func(f domain.BookingsFilter) bool
		wantErr    error
	}{
		{
			name: "upcoming confirmed",
			req:  &models.ListBookingsRequest{Status: ptr.Ptr("confirmed"), Type: "upcoming"},
			wantFilter: func(f domain.BookingsFilter) bool {
				return f.HostID == 1 && f.Period == domain.PeriodUpcoming &&
					f.Status != nil && *f.Status == domain.StatusConfirmed && f.Now.Equal(fixedNow)
			},
		},
		{
			name: "all",
			req:  &models.ListBookingsRequest{Type: "all"},
			wantFilter: func(f domain.BookingsFilter) bool {
				return f.Period == domain.PeriodAll && f.Status == nil
			},
		},
		{
			name:    "unknown status",
			req:     &models.ListBookingsRequest{Status: ptr.Ptr("pending")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown type",
			req:     &models.ListBookingsRequest{Type: "tomorrow"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewBookingRepository(t)
			if tc.wantFilter != nil {
				repo.On("List", mock.Anything, mock.MatchedBy(tc.wantFilter)).
					Return([]*domain.BookingDetails{details(domain.StatusConfirmed)}, nil)
				repo.On("GetAnswers", mock.Anything, []int64{42}).Return(map[int64][]domain.Answer{
					42: {{ID: 1, BookingID: 42, QuestionID: 3, Question: "Company?", Answer: "Acme"}},
				}, nil)
			}

			resp, err := newService(t, repo, mocks.NewNotifier(t)).List(context.Background(), 1, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, resp, 1)
			require.Len(t, resp[0].Answers, 1)
			assert.Equal(t, "Company?", resp[0].Answers[0].Question)
		})
	}
}

func TestService_Calendar(t *testing.T) {
	t.Parallel()

	repo := mocks.NewBookingRepository(t)
	repo.On("GetDetailsByUID", mock.Anything, testUID).Return(details(domain.StatusConfirmed), nil)
	repo.On("GetAnswers", mock.Anything, []int64{42}).Return(map[int64][]domain.Answer{}, nil)

	out, err := newService(t, repo, mocks.NewNotifier(t)).Calendar(context.Background(), testUID)

	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, testUID+"@example.com")
}
