package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeConn struct {
	subjects []string
	payloads [][]byte
	err      error
	drained  bool
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subj)
	f.payloads = append(f.payloads, data)
	return nil
}

func (f *fakeConn) FlushWithContext(context.Context) error { return nil }

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewWithWriter(io.Discard, "debug")
	require.NoError(t, err)
	return l
}

func TestNATSBus_Publish(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		prefix      string
		subject     string
		wantSubject string
	}{
		{name: "with prefix", prefix: "scheduling", subject: "bookings.created", wantSubject: "scheduling.bookings.created"},
		{name: "prefix dots are trimmed", prefix: ".scheduling.", subject: "bookings.cancelled", wantSubject: "scheduling.bookings.cancelled"},
		{name: "no prefix", subject: "bookings.rescheduled", wantSubject: "bookings.rescheduled"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := &fakeConn{}
			bus := newBus(c, tc.prefix, newTestLogger(t))

			err := bus.Publish(context.Background(), tc.subject, map[string]string{"uid": "abc"})
			require.NoError(t, err)

			require.Len(t, c.subjects, 1)
			assert.Equal(t, tc.wantSubject, c.subjects[0])

			var payload map[string]string
			require.NoError(t, json.Unmarshal(c.payloads[0], &payload))
			assert.Equal(t, "abc", payload["uid"])
		})
	}
}

func TestNATSBus_PublishErrors(t *testing.T) {
	t.Parallel()

	c := &fakeConn{err: errors.New("nats: connection closed")}
	bus := newBus(c, "scheduling", newTestLogger(t))

	err := bus.Publish(context.Background(), "bookings.created", struct{}{})
	assert.ErrorIs(t, err, ErrPublish)

	err = bus.Publish(context.Background(), "bookings.created", func() {})
	assert.ErrorIs(t, err, ErrPublish)

	require.NoError(t, bus.Close())
	assert.True(t, c.drained)
}
