package domain

import (
	"fmt"
	"time"
)

// GuardMode режим проверки пересечений при записи бронирования
type GuardMode string

const (
	// GuardModeRaw сравниваются интервалы без буферов
	GuardModeRaw GuardMode = "raw"

	// GuardModeBuffered кандидат расширяется буферами типа события,
	// проверка совпадает с той, что применяется при выдаче слотов
	GuardModeBuffered GuardMode = "buffered"
)

// ParseGuardMode парсит режим из конфига, пустая строка означает raw
func ParseGuardMode(s string) (GuardMode, error) {
	switch GuardMode(s) {
	case "", GuardModeRaw:
		return GuardModeRaw, nil
	case GuardModeBuffered:
		return GuardModeBuffered, nil
	default:
		return "", fmt.Errorf("domain: unknown guard mode %q", s)
	}
}

// CheckWindow интервал, с которым сравниваются существующие бронирования
//
// В режиме buffered кандидат расширяется так, чтобы условие
// existing.Expand(before, after).Overlaps(candidate) сводилось к сравнению
// existing с [start-after, end+before)
func (m GuardMode) CheckWindow(start, end time.Time, eventType *EventType) Interval {
	candidate := Interval{Start: start, End: end}
	if m != GuardModeBuffered || eventType == nil {
		return candidate
	}
	return candidate.Expand(eventType.BufferAfter(), eventType.BufferBefore())
}

// ConflictsWith проверяет, занимает ли существующее бронирование интервал [start, end)
//
// Первое условие: существующее покрывает начало кандидата.
// Второе: существующее покрывает конец кандидата.
// Третье: существующее целиком внутри кандидата.
// Вместе это полуоткрытое пересечение, касание границами конфликтом не является.
func ConflictsWith(existing Interval, start, end time.Time) bool {
	coversStart := !existing.Start.After(start) && existing.End.After(start)
	coversEnd := existing.Start.Before(end) && !existing.End.Before(end)
	inside := !existing.Start.Before(start) && !existing.End.After(end) && existing.Start.Before(existing.End)
	return coversStart || coversEnd || inside
}

// FindConflict ищет подтвержденное бронирование, пересекающее [start, end)
// excludeID исключает переносимое бронирование
func FindConflict(bookings []*Booking, start, end time.Time, excludeID *int64) *Booking {
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if ConflictsWith(b.Interval(), start, end) {
			return b
		}
	}
	return nil
}
