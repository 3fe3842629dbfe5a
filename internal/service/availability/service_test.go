package availability

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

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

func returnSame(_ context.Context, a *domain.Availability) *domain.Availability {
	return a
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		req       *models.CreateAvailabilityRequest
		mockSetup func(repo *mocks.AvailabilityRepository)
		wantErr   error
		check     func(t *testing.T, resp *models.AvailabilityResponse)
	}{
		{
			name: "defaults applied",
			req: &models.CreateAvailabilityRequest{
				Schedules: []models.ScheduleRequest{{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "17:00"}},
			},
			mockSetup: func(repo *mocks.AvailabilityRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Availability) bool {
					return a.Name == domain.DefaultAvailabilityName && a.Timezone == "UTC" && !a.IsDefault
				})).Return(func(_ context.Context, a *domain.Availability) *domain.Availability {
					a.ID = 5
					return a
				}, nil)
				repo.On("ReplaceSchedules", mock.Anything, int64(5), []domain.WeeklySchedule{
					{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
				}).Return([]domain.WeeklySchedule{
					{ID: 1, AvailabilityID: 5, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
				}, nil)
			},
			check: func(t *testing.T, resp *models.AvailabilityResponse) {
				assert.Equal(t, "Custom Schedule", resp.Name)
				assert.Equal(t, "UTC", resp.Timezone)
				require.Len(t, resp.Schedules, 1)
				assert.Equal(t, "09:00", resp.Schedules[0].StartTime)
				assert.NotNil(t, resp.Overrides)
			},
		},
		{
			name: "default demotes previous default",
			req:  &models.CreateAvailabilityRequest{Name: "Work", Timezone: "Europe/Berlin", IsDefault: true},
			mockSetup: func(repo *mocks.AvailabilityRepository) {
				repo.On("ClearDefault", mock.Anything, int64(1), (*int64)(nil)).Return(nil).Once()
				repo.On("Create", mock.Anything, mock.Anything).Return(func(_ context.Context, a *domain.Availability) *domain.Availability {
					a.ID = 6
					return a
				}, nil)
				repo.On("ReplaceSchedules", mock.Anything, int64(6), []domain.WeeklySchedule{}).Return([]domain.WeeklySchedule{}, nil)
			},
			check: func(t *testing.T, resp *models.AvailabilityResponse) {
				assert.True(t, resp.IsDefault)
			},
		},
		{
			name:      "unknown timezone",
			req:       &models.CreateAvailabilityRequest{Timezone: "Mars/Olympus"},
			mockSetup: func(repo *mocks.AvailabilityRepository) {},
			wantErr:   ErrInvalidInput,
		},
		{
			name: "start after end",
			req: &models.CreateAvailabilityRequest{
				Schedules: []models.ScheduleRequest{{DayOfWeek: 2, StartTime: "18:00", EndTime: "09:00"}},
			},
			mockSetup: func(repo *mocks.AvailabilityRepository) {},
			wantErr:   ErrInvalidInput,
		},
		{
			name: "day listed twice",
			req: &models.CreateAvailabilityRequest{
				Schedules: []models.ScheduleRequest{
					{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"},
					{DayOfWeek: 2, StartTime: "13:00", EndTime: "17:00"},
				},
			},
			mockSetup: func(repo *mocks.AvailabilityRepository) {},
			wantErr:   ErrInvalidInput,
		},
		{
			name: "malformed time",
			req: &models.CreateAvailabilityRequest{
				Schedules: []models.ScheduleRequest{{DayOfWeek: 2, StartTime: "nine", EndTime: "17:00"}},
			},
			mockSetup: func(repo *mocks.AvailabilityRepository) {},
			wantErr:   ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewAvailabilityRepository(t)
			tc.mockSetup(repo)

			svc := NewService(repo, passthroughTx{}, newTestLogger(t))
			resp, err := svc.Create(context.Background(), 1, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			tc.check(t, resp)
		})
	}
}

func TestService_Update_DemotesOtherDefaults(t *testing.T) {
	t.Parallel()

	repo := mocks.NewAvailabilityRepository(t)
	repo.On("GetByID", mock.Anything, int64(1), int64(3)).Return(&domain.Availability{
		ID: 3, UserID: 1, Name: "Old", Timezone: "UTC", CreatedAt: time.Now(),
	}, nil)
	repo.On("ClearDefault", mock.Anything, int64(1), ptr.Ptr(int64(3))).Return(nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Availability) bool {
		return a.IsDefault && a.Name == "Old" && a.Timezone == "Asia/Tokyo"
	})).Return(returnSame, nil)
	repo.On("GetSchedules", mock.Anything, []int64{3}).Return(map[int64][]domain.WeeklySchedule{}, nil)
	repo.On("GetOverrides", mock.Anything, []int64{3}).Return(map[int64][]domain.DateOverride{}, nil)

	svc := NewService(repo, passthroughTx{}, newTestLogger(t))
	resp, err := svc.Update(context.Background(), 1, 3, &models.UpdateAvailabilityRequest{
		Timezone:  ptr.Ptr("Asia/Tokyo"),
		IsDefault: ptr.Ptr(true),
	})

	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, "Asia/Tokyo", resp.Timezone)
	repo.AssertNotCalled(t, "ReplaceSchedules", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_ReplacesSchedulesWithoutDemotion(t *testing.T) {
	t.Parallel()

	repo := mocks.NewAvailabilityRepository(t)
	repo.On("GetByID", mock.Anything, int64(1), int64(3)).Return(&domain.Availability{
		ID: 3, UserID: 1, Name: "Old", Timezone: "UTC",
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(returnSame, nil)
	repo.On("ReplaceSchedules", mock.Anything, int64(3), []domain.WeeklySchedule{
		{DayOfWeek: 0, StartTime: "10:00", EndTime: "12:00"},
	}).Return([]domain.WeeklySchedule{{ID: 9, AvailabilityID: 3, DayOfWeek: 0, StartTime: "10:00", EndTime: "12:00"}}, nil)
	repo.On("GetOverrides", mock.Anything, []int64{3}).Return(map[int64][]domain.DateOverride{}, nil)

	svc := NewService(repo, passthroughTx{}, newTestLogger(t))
	resp, err := svc.Update(context.Background(), 1, 3, &models.UpdateAvailabilityRequest{
		Schedules: &[]models.ScheduleRequest{{DayOfWeek: 0, StartTime: "10:00", EndTime: "12:00"}},
	})

	require.NoError(t, err)
	require.Len(t, resp.Schedules, 1)
	repo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpsertOverride(t *testing.T) {
	t.Parallel()

	owned := &domain.Availability{ID: 3, UserID: 1, Timezone: "UTC"}

	testCases := []struct {
		name        string
		req         *models.OverrideRequest
		mockSetup   func(repo *mocks.AvailabilityRepository)
		wantErr     error
		wantCreated bool
	}{
		{
			name: "blocked date drops times",
			req:  &models.OverrideRequest{Date: "2025-03-10", StartTime: ptr.Ptr("09:00"), EndTime: ptr.Ptr("10:00"), IsBlocked: true},
			mockSetup: func(repo *mocks.AvailabilityRepository) {
				repo.On("GetByID", mock.Anything, int64(1), int64(3)).Return(owned, nil)
				repo.On("UpsertOverride", mock.Anything, mock.MatchedBy(func(o *domain.DateOverride) bool {
					return o.IsBlocked && o.StartTime == nil && o.EndTime == nil && o.Date.Format(domain.DateFormat) == "2025-03-10"
				})).Return(func(_ context.Context, o *domain.DateOverride) *domain.DateOverride {
					o.ID = 11
					return o
				}, true, nil)
			},
			wantCreated: true,
		},
		{
			name: "replacement hours update existing",
			req:  &models.OverrideRequest{Date: "2025-03-10", StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("14:00")},
			mockSetup: func(repo *mocks.AvailabilityRepository) {
				repo.On("GetByID", mock.Anything, int64(1), int64(3)).Return(owned, nil)
				start, end := types.TimeString("12:00"), types.TimeString("14:00")
				repo.On("UpsertOverride", mock.Anything, mock.Anything).Return(&domain.DateOverride{
					ID: 11, AvailabilityID: 3, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: &start, EndTime: &end,
				}, false, nil)
			},
		},
		{
			name: "hours missing",
			req:  &models.OverrideRequest{Date: "2025-03-10"},
			mockSetup: func(repo *mocks.AvailabilityRepository) {
				repo.On("GetByID", mock.Anything, int64(1), int64(3)).Return(owned, nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "bad date",
			req:  &models.OverrideRequest{Date: "10.03.2025", IsBlocked: true},
			mockSetup: func(repo *mocks.AvailabilityRepository) {
				repo.On("GetByID", mock.Anything, int64(1), int64(3)).Return(owned, nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "foreign availability",
			req:  &models.OverrideRequest{Date: "2025-03-10", IsBlocked: true},
			mockSetup: func(repo *mocks.AvailabilityRepository) {
				repo.On("GetByID", mock.Anything, int64(1), int64(3)).Return(nil, availabilityRepo.ErrAvailabilityNotFound)
			},
			wantErr: ErrAvailabilityNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewAvailabilityRepository(t)
			tc.mockSetup(repo)

			svc := NewService(repo, passthroughTx{}, newTestLogger(t))
			resp, created, err := svc.UpsertOverride(context.Background(), 1, 3, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, created)
			assert.Equal(t, "2025-03-10", resp.Date)
		})
	}
}

func TestService_DeleteOverride(t *testing.T) {
	t.Parallel()

	repo := mocks.NewAvailabilityRepository(t)
	repo.On("DeleteOverride", mock.Anything, int64(1), int64(3), int64(11)).Return(availabilityRepo.ErrOverrideNotFound)

	svc := NewService(repo, passthroughTx{}, newTestLogger(t))
	err := svc.DeleteOverride(context.Background(), 1, 3, 11)

	assert.ErrorIs(t, err, ErrOverrideNotFound)
}
