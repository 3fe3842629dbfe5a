package availability

import "errors"

var (
	// ErrAvailabilityNotFound расписание не найдено
	ErrAvailabilityNotFound = errors.New("availability.repository: availability not found")

	// ErrOverrideNotFound исключение на дату не найдено
	ErrOverrideNotFound = errors.New("availability.repository: override not found")

	// ErrDuplicateDay в расписании повторяется день недели
	ErrDuplicateDay = errors.New("availability.repository: duplicate day of week")

	ErrBuildQuery = errors.New("availability.repository: failed to build query")
	ErrExecQuery  = errors.New("availability.repository: failed to execute query")
	ErrScanRow    = errors.New("availability.repository: failed to scan row")
)
