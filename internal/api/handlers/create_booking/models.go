package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

// AnswerRequest ответ на вопрос формы
type AnswerRequest struct {
	QuestionID int64  `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EventTypeID int64           `json:"event_type_id" validate:"required"`
	BookerName  string          `json:"booker_name" validate:"required,max=255"`
	BookerEmail string          `json:"booker_email" validate:"required,email,max=255"`
	StartTime   string          `json:"start_time" validate:"required"` // RFC3339
	EndTime     string          `json:"end_time" validate:"required"`   // RFC3339
	Notes       string          `json:"notes,omitempty"`
	Answers     []AnswerRequest `json:"answers,omitempty" validate:"omitempty,dive"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(hostID int64) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	answers := make([]createBooking.AnswerInput, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, createBooking.AnswerInput{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}

	return &createBooking.Request{
		HostID:      hostID,
		EventTypeID: r.EventTypeID,
		BookerName:  r.BookerName,
		BookerEmail: r.BookerEmail,
		StartTime:   start,
		EndTime:     end,
		Notes:       r.Notes,
		Answers:     answers,
	}, nil
}
