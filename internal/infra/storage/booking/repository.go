package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerrors"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"b.id",
	"b.uid",
	"b.event_type_id",
	"b.booker_name",
	"b.booker_email",
	"b.start_time",
	"b.end_time",
	"b.status",
	"b.notes",
	"b.reminder_sent_at",
	"b.created_at",
	"b.updated_at",
}

var detailsColumns = append(append([]string{}, bookingColumns...),
	"et.title",
	"et.slug",
	"et.color",
	"et.duration",
	"u.name",
	"u.username",
	"u.email",
	"u.timezone",
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockEventType берет транзакционную advisory блокировку на тип события
// Все записи бронирований одного типа события выполняются последовательно до конца транзакции
func (r *Repository) LockEventType(ctx context.Context, eventTypeID int64) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", eventTypeID); err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return fmt.Errorf("%w: LockEventType: %v", ErrSerialization, err)
		}
		return fmt.Errorf("%w: LockEventType - execute: %v", ErrExecQuery, err)
	}

	return nil
}

// HasConflict проверяет, есть ли подтвержденное бронирование типа события, занимающее [start, end)
// excludeID исключает бронирование из проверки (перенос)
// В транзакции найденные строки блокируются FOR UPDATE
func (r *Repository) HasConflict(
	ctx context.Context,
	eventTypeID int64,
	start, end time.Time,
	excludeID *int64,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"event_type_id": eventTypeID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Or{
			// существующее покрывает начало кандидата
			squirrel.And{squirrel.LtOrEq{"start_time": start}, squirrel.Gt{"end_time": start}},
			// существующее покрывает конец кандидата
			squirrel.And{squirrel.Lt{"start_time": end}, squirrel.GtOrEq{"end_time": end}},
			// существующее внутри кандидата
			squirrel.And{squirrel.GtOrEq{"start_time": start}, squirrel.LtOrEq{"end_time": end}},
		})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	selectBuilder = selectBuilder.Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return false, fmt.Errorf("%w: HasConflict: %v", ErrSerialization, err)
		}
		return false, fmt.Errorf("%w: HasConflict - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// Create создает бронирование
// Пересечение с подтвержденным бронированием отклоняется ограничением bookings_no_overlap
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"uid",
			"event_type_id",
			"booker_name",
			"booker_email",
			"start_time",
			"end_time",
			"status",
			"notes",
		).
		Values(
			booking.UID,
			booking.EventTypeID,
			booking.BookerName,
			booking.BookerEmail,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, classifyWriteError("Create", err)
	}

	return booking, nil
}

// CreateAnswers сохраняет ответы на вопросы формы
func (r *Repository) CreateAnswers(ctx context.Context, bookingID int64, answers []domain.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("answers").Columns("booking_id", "question_id", "answer")
	for _, a := range answers {
		insertBuilder = insertBuilder.Values(bookingID, a.QuestionID, a.Answer)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateAnswers - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateAnswers - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByUID получает бронирование по публичному идентификатору
func (r *Repository) GetByUID(ctx context.Context, uid string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.uid": uid})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetDetailsByUID получает бронирование с типом события и хостом
func (r *Repository) GetDetailsByUID(ctx context.Context, uid string) (*domain.BookingDetails, error) {
	return r.getDetails(ctx, "GetDetailsByUID", squirrel.Eq{"b.uid": uid})
}

// GetDetailsByID получает бронирование с типом события и хостом по внутреннему ID
func (r *Repository) GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	return r.getDetails(ctx, "GetDetailsByID", squirrel.Eq{"b.id": id})
}

func (r *Repository) getDetails(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	details, err := scanDetails(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return details, nil
}

// List получает бронирования хоста с фильтрацией
//
// Period:
// - upcoming: подтвержденные, начинающиеся не раньше Now, по возрастанию
// - past: начавшиеся раньше Now, по убыванию
// - пусто: все, по убыванию
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := detailsSelect().Where(squirrel.Eq{"et.user_id": filter.HostID})

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	switch filter.Period {
	case domain.PeriodUpcoming:
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"b.start_time": filter.Now}).
			Where(squirrel.Eq{"b.status": domain.StatusConfirmed}).
			OrderBy("b.start_time ASC")
	case domain.PeriodPast:
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"b.start_time": filter.Now}).
			OrderBy("b.start_time DESC")
	default:
		selectBuilder = selectBuilder.OrderBy("b.start_time DESC")
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

	return scanDetailsRows(rows)
}

// GetAnswers получает ответы с текстом вопросов для набора бронирований
func (r *Repository) GetAnswers(ctx context.Context, bookingIDs []int64) (map[int64][]domain.Answer, error) {
	result := make(map[int64][]domain.Answer, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("a.id", "a.booking_id", "a.question_id", "q.question", "a.answer").
		From("answers a").
		Join("questions q ON q.id = a.question_id").
		Where(squirrel.Eq{"a.booking_id": bookingIDs}).
		OrderBy("a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAnswers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAnswers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.BookingID, &a.QuestionID, &a.Question, &a.Answer); err != nil {
			return nil, fmt.Errorf("%w: GetAnswers - scan row: %v", ErrScanRow, err)
		}
		result[a.BookingID] = append(result[a.BookingID], a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAnswers - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetConfirmedByEventType получает подтвержденные бронирования типа события,
// начинающиеся в интервале [from, to), по возрастанию
func (r *Repository) GetConfirmedByEventType(ctx context.Context, eventTypeID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.event_type_id": eventTypeID}).
		Where(squirrel.Eq{"b.status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"b.start_time": from}).
		Where(squirrel.Lt{"b.start_time": to}).
		OrderBy("b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByEventType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByEventType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetConfirmedByEventType - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByEventType - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateTimes переносит подтвержденное бронирование и сбрасывает отметку о напоминании
func (r *Repository) UpdateTimes(ctx context.Context, id int64, start, end time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_time", start).
		Set("end_time", end).
		Set("reminder_sent_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classifyWriteError("UpdateTimes", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus меняет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classifyWriteError("UpdateStatus", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetDueReminders получает подтвержденные бронирования без напоминания,
// начинающиеся в интервале (from, to]
func (r *Repository) GetDueReminders(ctx context.Context, from, to time.Time) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().
		Where(squirrel.Eq{"b.status": domain.StatusConfirmed}).
		Where(squirrel.Eq{"b.reminder_sent_at": nil}).
		Where(squirrel.Gt{"b.start_time": from}).
		Where(squirrel.LtOrEq{"b.start_time": to}).
		OrderBy("b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDueReminders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDueReminders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetailsRows(rows)
}

// MarkReminderSent отмечает отправку напоминания
// Возвращает false, если отметка уже стояла (напоминание отправил другой экземпляр)
func (r *Repository) MarkReminderSent(ctx context.Context, id int64, at time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("reminder_sent_at", at).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"reminder_sent_at": nil}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

func detailsSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("bookings b").
		Join("event_types et ON et.id = b.event_type_id").
		Join("users u ON u.id = et.user_id")
}

// classifyWriteError переводит ошибки PostgreSQL в ошибки репозитория
func classifyWriteError(op string, err error) error {
	switch {
	case pgerrors.IsExclusionViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrSlotConflict, op, err)
	case pgerrors.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
	case pgerrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrEventTypeNotFound, op, err)
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b          domain.Booking
		reminderAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.UID,
		&b.EventTypeID,
		&b.BookerName,
		&b.BookerEmail,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.Notes,
		&reminderAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reminderAt.Valid {
		b.ReminderSentAt = &reminderAt.Time
	}

	return &b, nil
}

func scanDetails(row rowScanner) (*domain.BookingDetails, error) {
	var (
		d          domain.BookingDetails
		reminderAt sql.NullTime
	)

	err := row.Scan(
		&d.ID,
		&d.UID,
		&d.EventTypeID,
		&d.BookerName,
		&d.BookerEmail,
		&d.StartTime,
		&d.EndTime,
		&d.Status,
		&d.Notes,
		&reminderAt,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.EventTitle,
		&d.EventSlug,
		&d.EventColor,
		&d.DurationMinutes,
		&d.HostName,
		&d.HostUsername,
		&d.HostEmail,
		&d.HostTimezone,
	)
	if err != nil {
		return nil, err
	}

	if reminderAt.Valid {
		d.ReminderSentAt = &reminderAt.Time
	}

	return &d, nil
}

func scanDetailsRows(rows *sql.Rows) ([]*domain.BookingDetails, error) {
	result := make([]*domain.BookingDetails, 0)

	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetailsRows - scan row: %v", ErrScanRow, err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetailsRows - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
