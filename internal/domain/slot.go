package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Interval полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps пересечение полуоткрытых интервалов: соприкосновение границами не считается
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Expand расширяет интервал: before отнимается от начала, after прибавляется к концу
func (i Interval) Expand(before, after time.Duration) Interval {
	return Interval{Start: i.Start.Add(-before), End: i.End.Add(after)}
}

// Slot свободный интервал, предлагаемый для бронирования
type Slot struct {
	Start time.Time
	End   time.Time
}

// Window рабочее окно на дату в настенном времени
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// ResolveWindow выбирает рабочее окно на дату
//
// Порядок:
// 1. Заблокированное исключение - окна нет
// 2. Исключение с часами полностью заменяет недельное расписание
// 3. Иначе недельное расписание на день недели
// 4. Ничего нет - окна нет
func ResolveWindow(availability *Availability, date time.Time) (Window, bool) {
	if availability == nil {
		return Window{}, false
	}

	if override := availability.OverrideFor(date); override != nil {
		if override.IsBlocked {
			return Window{}, false
		}
		if override.HasTimes() {
			return Window{Start: *override.StartTime, End: *override.EndTime}, true
		}
	}

	schedule := availability.ScheduleFor(date.Weekday())
	if schedule == nil {
		return Window{}, false
	}

	return Window{Start: schedule.StartTime, End: schedule.EndTime}, true
}

// ResolveSlots вычисляет свободные слоты типа события на календарную дату
//
// date - календарная дата в зоне доступности (используются год, месяц, день).
// bookings - подтвержденные бронирования типа события, начинающиеся в эту дату.
// Слоты перебираются с шагом SlotStepMinutes от начала окна, слот целиком помещается в окно,
// начинается строго после now и не пересекает бронирование, расширенное буферами.
// Без доступности результат пустой, это не ошибка.
func ResolveSlots(
	eventType *EventType,
	availability *Availability,
	bookings []*Booking,
	date time.Time,
	now time.Time,
) ([]Slot, error) {
	slots := make([]Slot, 0)

	if eventType.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, eventType.DurationMinutes)
	}

	if availability == nil {
		return slots, nil
	}

	loc, err := availability.Location()
	if err != nil {
		return nil, err
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	window, ok := ResolveWindow(availability, day)
	if !ok {
		return slots, nil
	}

	windowStart, err := window.Start.Minutes()
	if err != nil {
		return nil, err
	}
	windowEnd, err := window.End.Minutes()
	if err != nil {
		return nil, err
	}

	// Буферы расширяют занятые интервалы один раз для всех кандидатов
	busy := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		busy = append(busy, b.Interval().Expand(eventType.BufferBefore(), eventType.BufferAfter()))
	}

	duration := eventType.Duration()
	step := time.Duration(SlotStepMinutes) * time.Minute

	// Границы окна переводятся в моменты один раз, дальше шаг в абсолютном времени:
	// в день перехода на летнее время несуществующие часы не дают повторов
	first := time.Date(day.Year(), day.Month(), day.Day(), windowStart/60, windowStart%60, 0, 0, loc)
	last := time.Date(day.Year(), day.Month(), day.Day(), windowEnd/60, windowEnd%60, 0, 0, loc)

	for start := first; !start.Add(duration).After(last); start = start.Add(step) {
		end := start.Add(duration)

		// Прошедшие слоты и слот, начинающийся ровно сейчас, не предлагаются
		if !start.After(now) {
			continue
		}

		candidate := Interval{Start: start, End: end}
		if overlapsAny(candidate, busy) {
			continue
		}

		slots = append(slots, Slot{Start: start, End: end})
	}

	return slots, nil
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// DayBounds границы календарной даты в зоне loc: [00:00, 00:00 следующего дня)
func DayBounds(date time.Time, loc *time.Location) Interval {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return Interval{Start: start, End: start.AddDate(0, 0, 1)}
}
