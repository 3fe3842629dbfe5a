package reschedule_booking

import (
	"fmt"
	"strings"
	"time"
)

func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.UID) == "" {
		return fmt.Errorf("%w: uid is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start_time and end_time are required", ErrInvalidInput)
	}
	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}
	if !req.StartTime.After(now) {
		return ErrStartInPast
	}
	return nil
}
