package get_available_days

import (
	"fmt"
	"strings"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.HostUsername) == "" {
		return fmt.Errorf("%w: host_username is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.EventTypeSlug) == "" {
		return fmt.Errorf("%w: event_type_slug is required", ErrInvalidInput)
	}
	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}
	return nil
}
