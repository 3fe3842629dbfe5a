package event_type

import "errors"

var (
	// ErrEventTypeNotFound тип события не найден
	ErrEventTypeNotFound = errors.New("event_type.repository: event type not found")

	// ErrDuplicateSlug у хоста уже есть тип события с таким slug
	ErrDuplicateSlug = errors.New("event_type.repository: slug already exists")

	ErrBuildQuery = errors.New("event_type.repository: failed to build query")
	ErrExecQuery  = errors.New("event_type.repository: failed to execute query")
	ErrScanRow    = errors.New("event_type.repository: failed to scan row")
)
