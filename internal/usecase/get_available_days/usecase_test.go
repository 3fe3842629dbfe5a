package get_available_days

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days/mocks"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	fixedNow   = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	marchStart = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	marchEnd   = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	marchLast  = time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedNow }

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func march(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func dateKeys(days []time.Time) []string {
	result := make([]string, 0, len(days))
	for _, d := range days {
		result = append(result, d.Format(domain.DateFormat))
	}
	return result
}

func mondayWednesday() map[int64][]domain.WeeklySchedule {
	return map[int64][]domain.WeeklySchedule{
		5: {
			{AvailabilityID: 5, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
			{AvailabilityID: 5, DayOfWeek: 3, StartTime: "09:00", EndTime: "10:00"},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Parallel()

	host := &domain.User{ID: 1, Username: "alice", Timezone: "UTC"}
	eventType := &domain.EventType{ID: 7, UserID: 1, Slug: "intro", DurationMinutes: 60, IsActive: true}
	req := &Request{HostUsername: "alice", EventTypeSlug: "intro", Month: time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)}

	testCases := []struct {
		name      string
		req       *Request
		mockSetup func(u *mocks.UserRepository, et *mocks.EventTypeRepository, a *mocks.AvailabilityRepository, b *mocks.BookingRepository)
		wantDays  []string
		wantErr   error
	}{
		{
			name: "weekly days, overrides and bookings",
			req:  req,
			mockSetup: func(u *mocks.UserRepository, et *mocks.EventTypeRepository, a *mocks.AvailabilityRepository, b *mocks.BookingRepository) {
				u.On("GetByUsername", mock.Anything, "alice").Return(host, nil)
				et.On("GetBySlug", mock.Anything, int64(1), "intro", true).Return(eventType, nil)
				a.On("GetDefault", mock.Anything, int64(1)).Return(&domain.Availability{ID: 5, UserID: 1, Timezone: "UTC"}, nil)
				a.On("GetSchedules", mock.Anything, []int64{5}).Return(mondayWednesday(), nil)
				a.On("GetOverridesInRange", mock.Anything, int64(5), marchStart, marchLast).Return([]domain.DateOverride{
					{AvailabilityID: 5, Date: march(10), IsBlocked: true},
					{
						AvailabilityID: 5,
						Date:           march(15),
						StartTime:      ptr.Ptr(types.TimeString("10:00")),
						EndTime:        ptr.Ptr(types.TimeString("11:00")),
					},
				}, nil)
				b.On("GetConfirmedByEventType", mock.Anything, int64(7), marchStart, marchEnd).Return([]*domain.Booking{
					{ID: 1, StartTime: march(17).Add(9 * time.Hour), EndTime: march(17).Add(10 * time.Hour), Status: domain.StatusConfirmed},
				}, nil)
			},
			wantDays: []string{
				"2025-03-03", "2025-03-05", "2025-03-12", "2025-03-15",
				"2025-03-19", "2025-03-24", "2025-03-26", "2025-03-31",
			},
		},
		{
			name: "no default availability",
			req:  req,
			mockSetup: func(u *mocks.UserRepository, et *mocks.EventTypeRepository, a *mocks.AvailabilityRepository, b *mocks.BookingRepository) {
				u.On("GetByUsername", mock.Anything, "alice").Return(host, nil)
				et.On("GetBySlug", mock.Anything, int64(1), "intro", true).Return(eventType, nil)
				a.On("GetDefault", mock.Anything, int64(1)).Return(nil, availabilityRepo.ErrAvailabilityNotFound)
			},
			wantDays: []string{},
		},
		{
			name: "unknown host",
			req:  req,
			mockSetup: func(u *mocks.UserRepository, et *mocks.EventTypeRepository, a *mocks.AvailabilityRepository, b *mocks.BookingRepository) {
				u.On("GetByUsername", mock.Anything, "alice").Return(nil, userRepo.ErrUserNotFound)
			},
			wantErr: ErrHostNotFound,
		},
		{
			name: "schedule load failure",
			req:  req,
			mockSetup: func(u *mocks.UserRepository, et *mocks.EventTypeRepository, a *mocks.AvailabilityRepository, b *mocks.BookingRepository) {
				u.On("GetByUsername", mock.Anything, "alice").Return(host, nil)
				et.On("GetBySlug", mock.Anything, int64(1), "intro", true).Return(eventType, nil)
				a.On("GetDefault", mock.Anything, int64(1)).Return(&domain.Availability{ID: 5, Timezone: "UTC"}, nil)
				a.On("GetSchedules", mock.Anything, []int64{5}).Return(nil, errors.New("connection reset"))
				a.On("GetOverridesInRange", mock.Anything, int64(5), marchStart, marchLast).Return([]domain.DateOverride{}, nil).Maybe()
				b.On("GetConfirmedByEventType", mock.Anything, int64(7), marchStart, marchEnd).Return([]*domain.Booking{}, nil).Maybe()
			},
			wantErr: ErrInternal,
		},
		{
			name:    "missing month",
			req:     &Request{HostUsername: "alice", EventTypeSlug: "intro"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := mocks.NewUserRepository(t)
			eventTypes := mocks.NewEventTypeRepository(t)
			availabilities := mocks.NewAvailabilityRepository(t)
			bookings := mocks.NewBookingRepository(t)
			if tc.mockSetup != nil {
				tc.mockSetup(users, eventTypes, availabilities, bookings)
			}

			uc := NewUseCase(users, eventTypes, availabilities, bookings, newTestLogger(t))
			uc.timeProvider = fixedClock{}

			resp, err := uc.Execute(context.Background(), tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantDays, dateKeys(resp.Days))
			assert.Equal(t, "2025-03", resp.Month.Format(domain.MonthFormat))
		})
	}
}

func TestCandidateDates(t *testing.T) {
	t.Parallel()

	month := domain.Interval{Start: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), End: marchStart}

	t.Run("weekly rule only", func(t *testing.T) {
		t.Parallel()

		availability := &domain.Availability{Schedules: []domain.WeeklySchedule{{DayOfWeek: 5, StartTime: "09:00", EndTime: "17:00"}}}

		dates, err := candidateDates(availability, month)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-02-07", "2025-02-14", "2025-02-21", "2025-02-28"}, dateKeys(dates))
	})

	t.Run("override on a scheduled day is not duplicated", func(t *testing.T) {
		t.Parallel()

		availability := &domain.Availability{
			Schedules: []domain.WeeklySchedule{{DayOfWeek: 5, StartTime: "09:00", EndTime: "17:00"}},
			Overrides: []domain.DateOverride{{
				Date:      time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC),
				StartTime: ptr.Ptr(types.TimeString("12:00")),
				EndTime:   ptr.Ptr(types.TimeString("13:00")),
			}},
		}

		dates, err := candidateDates(availability, month)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-02-07", "2025-02-14", "2025-02-21", "2025-02-28"}, dateKeys(dates))
	})

	t.Run("no schedules and no overrides", func(t *testing.T) {
		t.Parallel()

		dates, err := candidateDates(&domain.Availability{}, month)
		require.NoError(t, err)
		assert.Empty(t, dates)
	})
}

func TestBookingsWithin(t *testing.T) {
	t.Parallel()

	day := domain.DayBounds(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), time.UTC)
	bookings := []*domain.Booking{
		// переходит через полночь из предыдущего дня
		{ID: 1, StartTime: day.Start.Add(-30 * time.Minute), EndTime: day.Start.Add(30 * time.Minute)},
		{ID: 2, StartTime: day.Start, EndTime: day.Start.Add(time.Hour)},
		// начинается в этот день, заканчивается на следующий
		{ID: 3, StartTime: day.End.Add(-15 * time.Minute), EndTime: day.End.Add(15 * time.Minute)},
		{ID: 4, StartTime: day.End, EndTime: day.End.Add(time.Hour)},
	}

	got := bookingsWithin(bookings, day)

	ids := make([]int64, 0, len(got))
	for _, b := range got {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []int64{2, 3}, ids)
}
