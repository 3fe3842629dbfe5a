package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest проверяет обязательные поля и порядок времени
func validateRequest(req *Request, now time.Time) error {
	if req.EventTypeID <= 0 {
		return fmt.Errorf("%w: event_type_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.BookerName) == "" {
		return fmt.Errorf("%w: booker_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.BookerEmail) == "" {
		return fmt.Errorf("%w: booker_email is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start_time and end_time are required", ErrInvalidInput)
	}
	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if !req.StartTime.After(now) {
		return ErrStartInPast
	}
	return nil
}

// collectAnswers проверяет ответы по вопросам типа события
// Ответы на чужие вопросы отклоняются, пустые ответы на необязательные вопросы отбрасываются
func collectAnswers(eventType *domain.EventType, inputs []AnswerInput) ([]domain.Answer, error) {
	byQuestion := make(map[int64]string, len(inputs))
	for _, in := range inputs {
		if eventType.QuestionByID(in.QuestionID) == nil {
			return nil, fmt.Errorf("%w: question %d does not belong to this event type", ErrInvalidInput, in.QuestionID)
		}
		if len(in.Answer) > domain.MaxAnswerLength {
			return nil, fmt.Errorf("%w: answer to question %d is too long", ErrInvalidInput, in.QuestionID)
		}
		byQuestion[in.QuestionID] = strings.TrimSpace(in.Answer)
	}

	answers := make([]domain.Answer, 0, len(byQuestion))
	for _, q := range eventType.Questions {
		answer := byQuestion[q.ID]
		if answer == "" {
			if q.Required {
				return nil, fmt.Errorf("%w: answer to %q is required", ErrInvalidInput, q.Text)
			}
			continue
		}
		answers = append(answers, domain.Answer{
			QuestionID: q.ID,
			Question:   q.Text,
			Answer:     answer,
		})
	}

	return answers, nil
}
