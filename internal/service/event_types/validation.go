package event_types

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateEventType проверяет бизнес-ограничения типа события и его вопросов
func validateEventType(et *domain.EventType, questions []domain.Question) error {
	if et.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if et.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if et.DurationMinutes < domain.MinDurationMinutes || et.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	if et.BufferBeforeMinutes < 0 || et.BufferBeforeMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: buffer_before must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}
	if et.BufferAfterMinutes < 0 || et.BufferAfterMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: buffer_after must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	for i, q := range questions {
		if q.Text == "" {
			return fmt.Errorf("%w: question #%d is empty", ErrInvalidInput, i+1)
		}
		if !q.Type.IsValid() {
			return fmt.Errorf("%w: question #%d has unknown type %q", ErrInvalidInput, i+1, q.Type)
		}
	}

	return nil
}
