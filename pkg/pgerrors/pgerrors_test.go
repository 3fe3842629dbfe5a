package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		err           error
		unique        bool
		exclusion     bool
		serialization bool
	}{
		{name: "unique", err: &pq.Error{Code: CodeUniqueViolation}, unique: true},
		{name: "exclusion wrapped", err: fmt.Errorf("insert: %w", &pq.Error{Code: CodeExclusionViolation}), exclusion: true},
		{name: "serialization", err: &pq.Error{Code: CodeSerializationFailure}, serialization: true},
		{name: "deadlock", err: &pq.Error{Code: CodeDeadlockDetected}, serialization: true},
		{name: "plain error", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.unique, IsUniqueViolation(tc.err))
			assert.Equal(t, tc.exclusion, IsExclusionViolation(tc.err))
			assert.Equal(t, tc.serialization, IsSerializationFailure(tc.err))
		})
	}
}

func TestConstraint(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrapped: %w", &pq.Error{Code: CodeUniqueViolation, Constraint: "event_types_user_id_slug_key"})
	assert.Equal(t, "event_types_user_id_slug_key", Constraint(err))
	assert.Empty(t, Constraint(errors.New("boom")))
}
