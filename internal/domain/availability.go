package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Availability набор рабочих часов хоста в одной временной зоне
type Availability struct {
	ID        int64
	UserID    int64
	Name      string
	Timezone  string
	IsDefault bool
	Schedules []WeeklySchedule
	Overrides []DateOverride
	CreatedAt time.Time
}

// Location загружает зону доступности
func (a *Availability) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, a.Timezone)
	}
	return loc, nil
}

// ScheduleFor возвращает недельное расписание на день недели
func (a *Availability) ScheduleFor(day time.Weekday) *WeeklySchedule {
	for i := range a.Schedules {
		if a.Schedules[i].DayOfWeek == int(day) {
			return &a.Schedules[i]
		}
	}
	return nil
}

// OverrideFor возвращает исключение на календарную дату
func (a *Availability) OverrideFor(date time.Time) *DateOverride {
	key := date.Format(DateFormat)
	for i := range a.Overrides {
		if a.Overrides[i].Date.Format(DateFormat) == key {
			return &a.Overrides[i]
		}
	}
	return nil
}

// WeeklySchedule рабочие часы на день недели (0 = воскресенье)
type WeeklySchedule struct {
	ID             int64
	AvailabilityID int64
	DayOfWeek      int
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// Validate проверяет день недели и порядок времени
func (s *WeeklySchedule) Validate() error {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return fmt.Errorf("%w: got %d", ErrInvalidDayOfWeek, s.DayOfWeek)
	}
	return ValidateTimeRange(s.StartTime, s.EndTime)
}

// DateOverride исключение на конкретную дату: блокировка дня или замена часов
type DateOverride struct {
	ID             int64
	AvailabilityID int64
	Date           time.Time
	StartTime      *types.TimeString
	EndTime        *types.TimeString
	IsBlocked      bool
}

// HasTimes true, если исключение задает собственные часы
func (o *DateOverride) HasTimes() bool {
	return o.StartTime != nil && o.EndTime != nil && !o.StartTime.IsZero() && !o.EndTime.IsZero()
}

// Validate проверяет часы исключения, если они заданы
func (o *DateOverride) Validate() error {
	if o.IsBlocked || !o.HasTimes() {
		return nil
	}
	return ValidateTimeRange(*o.StartTime, *o.EndTime)
}

// ValidateTimeRange проверяет формат и что start < end
func ValidateTimeRange(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return err
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}
	return nil
}
