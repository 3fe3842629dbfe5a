package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateAvailability проверяет зону и недельные часы
func validateAvailability(a *domain.Availability, schedules []domain.WeeklySchedule) error {
	if _, err := a.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	seen := make(map[int]bool, len(schedules))
	for i := range schedules {
		if err := schedules[i].Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if seen[schedules[i].DayOfWeek] {
			return fmt.Errorf("%w: day of week %d listed twice", ErrInvalidInput, schedules[i].DayOfWeek)
		}
		seen[schedules[i].DayOfWeek] = true
	}

	return nil
}

// validateOverride проверяет, что незаблокированное исключение задает корректные часы
func validateOverride(o *domain.DateOverride) error {
	if o.IsBlocked {
		return nil
	}
	if !o.HasTimes() {
		return fmt.Errorf("%w: start_time and end_time are required unless the date is blocked", ErrInvalidInput)
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
