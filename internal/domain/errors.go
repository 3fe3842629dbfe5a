package domain

import "errors"

var (
	// ErrInvalidDuration длительность типа события должна быть положительной
	ErrInvalidDuration = errors.New("domain: duration must be positive")

	// ErrInvalidTimezone зона доступности не загружается
	ErrInvalidTimezone = errors.New("domain: invalid timezone")

	// ErrInvalidTimeRange начало должно быть строго раньше конца
	ErrInvalidTimeRange = errors.New("domain: start must be before end")

	// ErrInvalidDayOfWeek день недели вне диапазона 0..6
	ErrInvalidDayOfWeek = errors.New("domain: day of week must be in [0,6]")
)
