package user

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

func TestRepository_GetByUsername(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, username, timezone, created_at FROM users WHERE username = \$1`).
		WithArgs("host").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "Host", "host@example.com", "host", "Europe/Berlin", now))
	mock.ExpectQuery(`SELECT .* FROM users WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userColumns))

	u, err := repo.GetByUsername(context.Background(), "host")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Europe/Berlin", u.Timezone)

	_, err = repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_UsernameTaken(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`UPDATE users SET .* WHERE id = \$5 RETURNING created_at`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	_, err = repo.Update(context.Background(), &domain.User{ID: 1, Name: "Host", Username: "taken", Timezone: "UTC"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
