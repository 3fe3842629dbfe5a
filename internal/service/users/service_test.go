package users

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event_type"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users/mocks"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func host() *domain.User {
	return &domain.User{
		ID:        1,
		Name:      "Host",
		Email:     "host@example.com",
		Username:  "host",
		Timezone:  "Europe/Berlin",
		CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		req       *models.UpdateUserRequest
		mockSetup func(users *mocks.UserRepository)
		wantErr   error
	}{
		{
			name: "success",
			req:  &models.UpdateUserRequest{Name: "New", Email: "new@example.com", Username: "new", Timezone: "Asia/Tokyo"},
			mockSetup: func(users *mocks.UserRepository) {
				users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.ID == 1 && u.Username == "new" && u.Timezone == "Asia/Tokyo"
				})).Return(host(), nil)
			},
		},
		{
			name:      "unknown timezone",
			req:       &models.UpdateUserRequest{Name: "New", Email: "new@example.com", Username: "new", Timezone: "Mars/Olympus"},
			mockSetup: func(users *mocks.UserRepository) {},
			wantErr:   ErrInvalidInput,
		},
		{
			name: "username taken",
			req:  &models.UpdateUserRequest{Name: "New", Email: "new@example.com", Username: "taken", Timezone: "UTC"},
			mockSetup: func(users *mocks.UserRepository) {
				users.On("Update", mock.Anything, mock.Anything).Return(nil, userRepo.ErrUsernameTaken)
			},
			wantErr: ErrUsernameTaken,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := mocks.NewUserRepository(t)
			tc.mockSetup(users)

			svc := NewService(users, mocks.NewEventTypeRepository(t), newTestLogger(t))

			resp, err := svc.Update(context.Background(), 1, tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "host", resp.Username)
			assert.Equal(t, "2025-01-01T00:00:00Z", resp.CreatedAt)
		})
	}
}

func TestService_GetPublicProfile(t *testing.T) {
	t.Parallel()

	users := mocks.NewUserRepository(t)
	eventTypes := mocks.NewEventTypeRepository(t)

	users.On("GetByUsername", mock.Anything, "host").Return(host(), nil)
	eventTypes.On("List", mock.Anything, int64(1), true).Return([]*domain.EventType{
		{ID: 5, Title: "Intro", Slug: "intro", DurationMinutes: 30, Color: "#7C3AED", IsActive: true},
	}, nil)

	svc := NewService(users, eventTypes, newTestLogger(t))

	resp, err := svc.GetPublicProfile(context.Background(), "host")
	require.NoError(t, err)
	assert.Equal(t, "host", resp.User.Username)
	require.Len(t, resp.EventTypes, 1)
	assert.Equal(t, "intro", resp.EventTypes[0].Slug)
}

func TestService_GetPublicEvent(t *testing.T) {
	t.Parallel()

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserRepository(t)
		users.On("GetByUsername", mock.Anything, "ghost").Return(nil, userRepo.ErrUserNotFound)

		svc := NewService(users, mocks.NewEventTypeRepository(t), newTestLogger(t))

		_, err := svc.GetPublicEvent(context.Background(), "ghost", "intro")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("inactive or missing event type", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserRepository(t)
		eventTypes := mocks.NewEventTypeRepository(t)
		users.On("GetByUsername", mock.Anything, "host").Return(host(), nil)
		eventTypes.On("GetBySlug", mock.Anything, int64(1), "hidden", true).Return(nil, eventTypeRepo.ErrEventTypeNotFound)

		svc := NewService(users, eventTypes, newTestLogger(t))

		_, err := svc.GetPublicEvent(context.Background(), "host", "hidden")
		assert.ErrorIs(t, err, ErrEventTypeNotFound)
	})

	t.Run("with questions", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserRepository(t)
		eventTypes := mocks.NewEventTypeRepository(t)
		users.On("GetByUsername", mock.Anything, "host").Return(host(), nil)
		eventTypes.On("GetBySlug", mock.Anything, int64(1), "intro", true).
			Return(&domain.EventType{ID: 5, Slug: "intro", DurationMinutes: 30}, nil)
		eventTypes.On("GetQuestions", mock.Anything, []int64{5}).Return(map[int64][]domain.Question{
			5: {{ID: 1, EventTypeID: 5, Text: "Phone?", Required: true, Type: domain.QuestionTypePhone}},
		}, nil)

		svc := NewService(users, eventTypes, newTestLogger(t))

		resp, err := svc.GetPublicEvent(context.Background(), "host", "intro")
		require.NoError(t, err)
		require.Len(t, resp.Questions, 1)
		assert.Equal(t, "phone", resp.Questions[0].QuestionType)
		assert.Equal(t, 30, resp.EventType.Duration)
	})
}
