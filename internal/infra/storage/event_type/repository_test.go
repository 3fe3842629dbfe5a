package event_type

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func TestRepository_Create_DuplicateSlug(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO event_types .* RETURNING id, created_at, updated_at`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "event_types_user_slug_key"})

	_, err = NewRepository(db).Create(context.Background(), &domain.EventType{UserID: 1, Title: "Intro", Slug: "intro", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestRepository_GetBySlug(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	columns := []string{"id", "user_id", "title", "description", "duration", "slug", "color",
		"is_active", "buffer_before", "buffer_after", "username", "created_at", "updated_at"}

	mock.ExpectQuery(`FROM event_types et JOIN users u ON u.id = et.user_id WHERE .*et.is_active = \$3`).
		WithArgs("intro", int64(1), true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(5, 1, "Intro", "", 30, "intro", "#7C3AED", true, 10, 5, "host", now, now))

	et, err := NewRepository(db).GetBySlug(context.Background(), 1, "intro", true)
	require.NoError(t, err)
	assert.Equal(t, int64(5), et.ID)
	assert.Equal(t, "host", et.HostUsername)
	assert.Equal(t, 10, et.BufferBeforeMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SlugExists(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM event_types WHERE .* id <> \$3 LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	self := int64(5)
	exists, err := NewRepository(db).SlugExists(context.Background(), 1, "intro", &self)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_ReplaceQuestions(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM questions WHERE event_type_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(`INSERT INTO questions .* RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO questions .* RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	saved, err := NewRepository(db).ReplaceQuestions(context.Background(), 5, []domain.Question{
		{Text: "Phone?", Required: true, Type: domain.QuestionTypePhone},
		{Text: "Topic?", Type: domain.QuestionTypeText},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, int64(11), saved[0].ID)
	assert.Equal(t, int64(5), saved[1].EventTypeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM event_types WHERE`).WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrEventTypeNotFound)
}
