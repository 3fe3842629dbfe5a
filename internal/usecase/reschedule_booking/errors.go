package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrCannotReschedule возвращается для отмененного бронирования
	ErrCannotReschedule = errors.New("reschedule_booking: only confirmed bookings can be rescheduled")

	// ErrSlotUnavailable возвращается, когда новый интервал занят
	ErrSlotUnavailable = errors.New("reschedule_booking: slot unavailable")

	// ErrStartInPast возвращается при переносе на уже начавшийся интервал
	ErrStartInPast = errors.New("reschedule_booking: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
