package domain

import "time"

// QuestionType тип поля вопроса на форме бронирования
type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"
	QuestionTypeTextarea QuestionType = "textarea"
	QuestionTypePhone    QuestionType = "phone"
)

// IsValid проверяет, что тип вопроса известен
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeTextarea, QuestionTypePhone:
		return true
	}
	return false
}

// EventType тип встречи, который хост предлагает для бронирования
type EventType struct {
	ID                  int64
	UserID              int64
	Title               string
	Description         string
	DurationMinutes     int
	Slug                string
	Color               string
	IsActive            bool
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	Questions           []Question

	// Заполняется при выборке с join на users
	HostUsername string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration длительность встречи
func (e *EventType) Duration() time.Duration {
	return time.Duration(e.DurationMinutes) * time.Minute
}

// BufferBefore время подготовки перед встречей
func (e *EventType) BufferBefore() time.Duration {
	return time.Duration(e.BufferBeforeMinutes) * time.Minute
}

// BufferAfter время после встречи
func (e *EventType) BufferAfter() time.Duration {
	return time.Duration(e.BufferAfterMinutes) * time.Minute
}

// QuestionByID ищет вопрос типа события
func (e *EventType) QuestionByID(id int64) *Question {
	for i := range e.Questions {
		if e.Questions[i].ID == id {
			return &e.Questions[i]
		}
	}
	return nil
}

// Question дополнительный вопрос формы бронирования
type Question struct {
	ID          int64
	EventTypeID int64
	Text        string
	Required    bool
	Type        QuestionType
}
