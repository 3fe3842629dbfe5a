package availability

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
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	availabilityColumns = []string{"id", "user_id", "name", "timezone", "is_default", "created_at"}
	scheduleColumns     = []string{"id", "availability_id", "day_of_week", "start_time", "end_time"}
	overrideColumns     = []string{"id", "availability_id", "date", "start_time", "end_time", "is_blocked"}
)

// Repository репозиторий расписаний, недельных часов и исключений на даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает расписания хоста в порядке создания
func (r *Repository) List(ctx context.Context, userID int64) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("availability").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Availability, 0)
	for rows.Next() {
		a, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByID получает расписание хоста по ID
func (r *Repository) GetByID(ctx context.Context, userID, id int64) (*domain.Availability, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"user_id": userID, "id": id})
}

// GetDefault получает расписание хоста по умолчанию
func (r *Repository) GetDefault(ctx context.Context, userID int64) (*domain.Availability, error) {
	return r.getOne(ctx, "GetDefault", squirrel.Eq{"user_id": userID, "is_default": true})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("availability").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	a, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan availability: %v", ErrScanRow, op, err)
	}

	return a, nil
}

// Create создает расписание (без недельных часов)
func (r *Repository) Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability").
		Columns("user_id", "name", "timezone", "is_default").
		Values(a.UserID, a.Name, a.Timezone, a.IsDefault).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// Update обновляет имя, зону и признак расписания по умолчанию
func (r *Repository) Update(ctx context.Context, a *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability").
		Set("name", a.Name).
		Set("timezone", a.Timezone).
		Set("is_default", a.IsDefault).
		Where(squirrel.Eq{"id": a.ID, "user_id": a.UserID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return a, nil
}

// Delete удаляет расписание хоста (часы и исключения удаляются каскадом)
func (r *Repository) Delete(ctx context.Context, userID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
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
		return ErrAvailabilityNotFound
	}

	return nil
}

// ClearDefault снимает признак по умолчанию со всех расписаний хоста
// exceptID оставляет признак у указанного расписания
func (r *Repository) ClearDefault(ctx context.Context, userID int64, exceptID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("availability").
		Set("is_default", false).
		Where(squirrel.Eq{"user_id": userID, "is_default": true})

	if exceptID != nil {
		updateBuilder = updateBuilder.Where(squirrel.NotEq{"id": *exceptID})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ClearDefault - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ClearDefault - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSchedules получает недельные часы набора расписаний
func (r *Repository) GetSchedules(ctx context.Context, availabilityIDs []int64) (map[int64][]domain.WeeklySchedule, error) {
	result := make(map[int64][]domain.WeeklySchedule, len(availabilityIDs))
	if len(availabilityIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"availability_id": availabilityIDs}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.WeeklySchedule
		if err := rows.Scan(&s.ID, &s.AvailabilityID, &s.DayOfWeek, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetSchedules - scan row: %v", ErrScanRow, err)
		}
		result[s.AvailabilityID] = append(result[s.AvailabilityID], s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSchedules - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ReplaceSchedules заменяет недельные часы расписания целиком
func (r *Repository) ReplaceSchedules(ctx context.Context, availabilityID int64, schedules []domain.WeeklySchedule) ([]domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"availability_id": availabilityID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceSchedules - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceSchedules - execute delete: %v", ErrExecQuery, err)
	}

	saved := make([]domain.WeeklySchedule, 0, len(schedules))
	for _, s := range schedules {
		query, args, err := psqlbuilder.Insert("schedules").
			Columns("availability_id", "day_of_week", "start_time", "end_time").
			Values(availabilityID, s.DayOfWeek, s.StartTime, s.EndTime).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceSchedules - build insert query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
			if pgerrors.IsUniqueViolation(err) {
				return nil, fmt.Errorf("%w: day %d", ErrDuplicateDay, s.DayOfWeek)
			}
			return nil, fmt.Errorf("%w: ReplaceSchedules - execute insert: %v", ErrExecQuery, err)
		}

		s.AvailabilityID = availabilityID
		saved = append(saved, s)
	}

	return saved, nil
}

// GetOverrides получает исключения набора расписаний, по возрастанию даты
func (r *Repository) GetOverrides(ctx context.Context, availabilityIDs []int64) (map[int64][]domain.DateOverride, error) {
	result := make(map[int64][]domain.DateOverride, len(availabilityIDs))
	if len(availabilityIDs) == 0 {
		return result, nil
	}

	return result, r.queryOverrides(ctx, "GetOverrides", squirrel.Eq{"availability_id": availabilityIDs}, func(o domain.DateOverride) {
		result[o.AvailabilityID] = append(result[o.AvailabilityID], o)
	})
}

// GetOverridesInRange получает исключения расписания на даты [from, to]
func (r *Repository) GetOverridesInRange(ctx context.Context, availabilityID int64, from, to time.Time) ([]domain.DateOverride, error) {
	result := make([]domain.DateOverride, 0)

	where := squirrel.And{
		squirrel.Eq{"availability_id": availabilityID},
		squirrel.GtOrEq{"date": from.Format(domain.DateFormat)},
		squirrel.LtOrEq{"date": to.Format(domain.DateFormat)},
	}

	err := r.queryOverrides(ctx, "GetOverridesInRange", where, func(o domain.DateOverride) {
		result = append(result, o)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Repository) queryOverrides(ctx context.Context, op string, where squirrel.Sqlizer, collect func(domain.DateOverride)) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("overrides").
		Where(where).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		collect(*o)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return nil
}

// UpsertOverride создает исключение на дату или заменяет существующее
// created = true, если строка была вставлена
func (r *Repository) UpsertOverride(ctx context.Context, o *domain.DateOverride) (*domain.DateOverride, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("overrides").
		Columns("availability_id", "date", "start_time", "end_time", "is_blocked").
		Values(o.AvailabilityID, o.Date.Format(domain.DateFormat), o.StartTime, o.EndTime, o.IsBlocked).
		Suffix("ON CONFLICT (availability_id, date) DO UPDATE SET " +
			"start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, is_blocked = EXCLUDED.is_blocked " +
			"RETURNING id, (xmax = 0) AS inserted").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: UpsertOverride - build insert query: %v", ErrBuildQuery, err)
	}

	var created bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &created); err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, false, ErrAvailabilityNotFound
		}
		return nil, false, fmt.Errorf("%w: UpsertOverride - execute insert: %v", ErrExecQuery, err)
	}

	return o, created, nil
}

// DeleteOverride удаляет исключение расписания, принадлежащего хосту
func (r *Repository) DeleteOverride(ctx context.Context, userID, availabilityID, overrideID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("overrides").
		Where(squirrel.Eq{"id": overrideID, "availability_id": availabilityID}).
		Where("availability_id IN (SELECT id FROM availability WHERE user_id = ?)", userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.Availability, error) {
	var a domain.Availability

	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Timezone, &a.IsDefault, &a.CreatedAt); err != nil {
		return nil, err
	}

	a.Schedules = make([]domain.WeeklySchedule, 0)
	a.Overrides = make([]domain.DateOverride, 0)

	return &a, nil
}

func scanOverride(row rowScanner) (*domain.DateOverride, error) {
	var (
		o          domain.DateOverride
		start, end types.TimeString
	)

	if err := row.Scan(&o.ID, &o.AvailabilityID, &o.Date, &start, &end, &o.IsBlocked); err != nil {
		return nil, err
	}

	if !start.IsZero() {
		o.StartTime = &start
	}
	if !end.IsZero() {
		o.EndTime = &end
	}

	return &o, nil
}
