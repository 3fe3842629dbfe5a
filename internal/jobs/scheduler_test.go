package jobs

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type recordingUseCase struct {
	mu       sync.Mutex
	requests []*send_reminders.Request
	err      error
	calls    chan struct{}
}

func (r *recordingUseCase) Execute(ctx context.Context, req *send_reminders.Request) (*send_reminders.Response, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()
	select {
	case r.calls <- struct{}{}:
	default:
	}
	if r.err != nil {
		return nil, r.err
	}
	return &send_reminders.Response{}, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func TestScheduler_AddReminders_InvalidSchedule(t *testing.T) {
	t.Parallel()

	s := NewScheduler(newTestLogger(t))

	err := s.AddReminders("every now and then", &recordingUseCase{}, time.Hour, time.Minute)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestScheduler_RunsReminders(t *testing.T) {
	t.Parallel()

	uc := &recordingUseCase{calls: make(chan struct{}, 1)}
	s := NewScheduler(newTestLogger(t))
	require.NoError(t, s.AddReminders("@every 1s", uc, 30*time.Minute, time.Second))

	s.Start()

	select {
	case <-uc.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("reminder job did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	uc.mu.Lock()
	defer uc.mu.Unlock()
	require.NotEmpty(t, uc.requests)
	assert.Equal(t, 30*time.Minute, uc.requests[0].Lead)
}

func TestReminderJob_Run_SwallowsErrors(t *testing.T) {
	t.Parallel()

	uc := &recordingUseCase{err: errors.New("db down")}
	job := &reminderJob{uc: uc, lead: time.Hour, logger: newTestLogger(t)}

	assert.NotPanics(t, job.Run)
	assert.Len(t, uc.requests, 1)
}
