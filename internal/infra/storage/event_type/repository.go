package event_type

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerrors"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var eventTypeColumns = []string{
	"et.id",
	"et.user_id",
	"et.title",
	"et.description",
	"et.duration",
	"et.slug",
	"et.color",
	"et.is_active",
	"et.buffer_before",
	"et.buffer_after",
	"u.username",
	"et.created_at",
	"et.updated_at",
}

var questionColumns = []string{"id", "event_type_id", "question", "required", "question_type"}

// Repository репозиторий типов событий и их вопросов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает типы событий хоста в порядке создания
// activeOnly оставляет только активные (публичный профиль)
func (r *Repository) List(ctx context.Context, userID int64, activeOnly bool) ([]*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := baseSelect().
		Where(squirrel.Eq{"et.user_id": userID}).
		OrderBy("et.id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"et.is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.EventType, 0)
	for rows.Next() {
		et, err := scanEventType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, et)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByID получает тип события хоста по ID
func (r *Repository) GetByID(ctx context.Context, userID, id int64) (*domain.EventType, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"et.user_id": userID, "et.id": id})
}

// GetBySlug получает тип события хоста по slug
func (r *Repository) GetBySlug(ctx context.Context, userID int64, slug string, activeOnly bool) (*domain.EventType, error) {
	where := squirrel.And{squirrel.Eq{"et.user_id": userID, "et.slug": slug}}
	if activeOnly {
		where = append(where, squirrel.Eq{"et.is_active": true})
	}
	return r.getOne(ctx, "GetBySlug", where)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := baseSelect().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	et, err := scanEventType(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan event type: %v", ErrScanRow, op, err)
	}

	return et, nil
}

// SlugExists проверяет, занят ли slug у хоста
// excludeID исключает обновляемый тип события
func (r *Repository) SlugExists(ctx context.Context, userID int64, slug string, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("event_types").
		Where(squirrel.Eq{"user_id": userID, "slug": slug}).
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// Create создает тип события
func (r *Repository) Create(ctx context.Context, et *domain.EventType) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("event_types").
		Columns(
			"user_id",
			"title",
			"description",
			"duration",
			"slug",
			"color",
			"is_active",
			"buffer_before",
			"buffer_after",
		).
		Values(
			et.UserID,
			et.Title,
			et.Description,
			et.DurationMinutes,
			et.Slug,
			et.Color,
			et.IsActive,
			et.BufferBeforeMinutes,
			et.BufferAfterMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&et.ID, &et.CreatedAt, &et.UpdatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return et, nil
}

// Update обновляет все поля типа события, кроме вопросов
func (r *Repository) Update(ctx context.Context, et *domain.EventType) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("event_types").
		Set("title", et.Title).
		Set("description", et.Description).
		Set("duration", et.DurationMinutes).
		Set("slug", et.Slug).
		Set("color", et.Color).
		Set("is_active", et.IsActive).
		Set("buffer_before", et.BufferBeforeMinutes).
		Set("buffer_after", et.BufferAfterMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": et.ID, "user_id": et.UserID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&et.CreatedAt, &et.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventTypeNotFound
	}
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return et, nil
}

// Delete удаляет тип события хоста (вопросы и бронирования удаляются каскадом)
func (r *Repository) Delete(ctx context.Context, userID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("event_types").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEventTypeNotFound
	}

	return nil
}

// GetQuestions получает вопросы для набора типов событий в порядке создания
func (r *Repository) GetQuestions(ctx context.Context, eventTypeIDs []int64) (map[int64][]domain.Question, error) {
	result := make(map[int64][]domain.Question, len(eventTypeIDs))
	if len(eventTypeIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(questionColumns...).
		From("questions").
		Where(squirrel.Eq{"event_type_id": eventTypeIDs}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetQuestions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetQuestions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.EventTypeID, &q.Text, &q.Required, &q.Type); err != nil {
			return nil, fmt.Errorf("%w: GetQuestions - scan row: %v", ErrScanRow, err)
		}
		result[q.EventTypeID] = append(result[q.EventTypeID], q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetQuestions - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ReplaceQuestions заменяет набор вопросов типа события целиком
// Вызывается внутри транзакции вместе с Create/Update
func (r *Repository) ReplaceQuestions(ctx context.Context, eventTypeID int64, questions []domain.Question) ([]domain.Question, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("questions").
		Where(squirrel.Eq{"event_type_id": eventTypeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceQuestions - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceQuestions - execute delete: %v", ErrExecQuery, err)
	}

	saved := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		query, args, err := psqlbuilder.Insert("questions").
			Columns("event_type_id", "question", "required", "question_type").
			Values(eventTypeID, q.Text, q.Required, q.Type).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceQuestions - build insert query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&q.ID); err != nil {
			return nil, fmt.Errorf("%w: ReplaceQuestions - execute insert: %v", ErrExecQuery, err)
		}

		q.EventTypeID = eventTypeID
		saved = append(saved, q)
	}

	return saved, nil
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(eventTypeColumns...).
		From("event_types et").
		Join("users u ON u.id = et.user_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEventType(row rowScanner) (*domain.EventType, error) {
	var et domain.EventType

	err := row.Scan(
		&et.ID,
		&et.UserID,
		&et.Title,
		&et.Description,
		&et.DurationMinutes,
		&et.Slug,
		&et.Color,
		&et.IsActive,
		&et.BufferBeforeMinutes,
		&et.BufferAfterMinutes,
		&et.HostUsername,
		&et.CreatedAt,
		&et.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &et, nil
}
