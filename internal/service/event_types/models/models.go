package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// QuestionRequest вопрос формы бронирования
type QuestionRequest struct {
	Question     string `json:"question" validate:"required,max=1000"`
	Required     bool   `json:"required"`
	QuestionType string `json:"question_type" validate:"omitempty,oneof=text textarea phone"`
}

// CreateEventTypeRequest запрос на создание типа события
type CreateEventTypeRequest struct {
	Title        string            `json:"title" validate:"required,max=255"`
	Description  string            `json:"description"`
	Duration     *int              `json:"duration,omitempty" validate:"omitempty,min=1,max=1440"`
	Slug         string            `json:"slug" validate:"required,max=100"`
	Color        string            `json:"color" validate:"omitempty,max=16"`
	BufferBefore int               `json:"buffer_before" validate:"min=0,max=1440"`
	BufferAfter  int               `json:"buffer_after" validate:"min=0,max=1440"`
	Questions    []QuestionRequest `json:"questions" validate:"omitempty,dive"`
}

// UpdateEventTypeRequest запрос на обновление типа события
// Questions == nil оставляет вопросы без изменений, пустой список удаляет их
type UpdateEventTypeRequest struct {
	Title        string             `json:"title" validate:"required,max=255"`
	Description  string             `json:"description"`
	Duration     *int               `json:"duration,omitempty" validate:"omitempty,min=1,max=1440"`
	Slug         string             `json:"slug" validate:"required,max=100"`
	Color        string             `json:"color" validate:"omitempty,max=16"`
	IsActive     *bool              `json:"is_active,omitempty"`
	BufferBefore int                `json:"buffer_before" validate:"min=0,max=1440"`
	BufferAfter  int                `json:"buffer_after" validate:"min=0,max=1440"`
	Questions    *[]QuestionRequest `json:"questions,omitempty" validate:"omitempty,dive"`
}

// Response модели

// QuestionResponse вопрос формы бронирования
type QuestionResponse struct {
	ID           int64  `json:"id"`
	EventTypeID  int64  `json:"event_type_id"`
	Question     string `json:"question"`
	Required     bool   `json:"required"`
	QuestionType string `json:"question_type"`
}

// EventTypeResponse тип события с вопросами
type EventTypeResponse struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"user_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Duration     int                `json:"duration"`
	Slug         string             `json:"slug"`
	Color        string             `json:"color"`
	IsActive     bool               `json:"is_active"`
	BufferBefore int                `json:"buffer_before"`
	BufferAfter  int                `json:"buffer_after"`
	Username     string             `json:"username,omitempty"`
	Questions    []QuestionResponse `json:"questions"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

// Конвертеры

// NormalizeSlug приводит slug к нижнему регистру без пробелов по краям
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// ToDomainEventType конвертирует запрос на создание в доменную модель с дефолтами
func (r *CreateEventTypeRequest) ToDomainEventType(hostID int64) *domain.EventType {
	et := &domain.EventType{
		UserID:              hostID,
		Title:               strings.TrimSpace(r.Title),
		Description:         r.Description,
		DurationMinutes:     domain.DefaultDurationMinutes,
		Slug:                NormalizeSlug(r.Slug),
		Color:               r.Color,
		IsActive:            true,
		BufferBeforeMinutes: r.BufferBefore,
		BufferAfterMinutes:  r.BufferAfter,
	}

	if r.Duration != nil {
		et.DurationMinutes = *r.Duration
	}
	if et.Color == "" {
		et.Color = domain.DefaultColor
	}

	return et
}

// ApplyTo применяет запрос на обновление к существующему типу события
// Незаданные длительность и цвет сохраняются, незаданный is_active означает активный тип
func (r *UpdateEventTypeRequest) ApplyTo(et *domain.EventType) {
	et.Title = strings.TrimSpace(r.Title)
	et.Description = r.Description
	et.Slug = NormalizeSlug(r.Slug)
	et.BufferBeforeMinutes = r.BufferBefore
	et.BufferAfterMinutes = r.BufferAfter
	et.IsActive = true

	if r.Duration != nil {
		et.DurationMinutes = *r.Duration
	}
	if r.Color != "" {
		et.Color = r.Color
	}
	if r.IsActive != nil {
		et.IsActive = *r.IsActive
	}
}

// ToDomainQuestions конвертирует вопросы запроса, пустой тип означает text
func ToDomainQuestions(questions []QuestionRequest) []domain.Question {
	result := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		qType := domain.QuestionType(q.QuestionType)
		if qType == "" {
			qType = domain.DefaultQuestionType
		}
		result = append(result, domain.Question{
			Text:     strings.TrimSpace(q.Question),
			Required: q.Required,
			Type:     qType,
		})
	}
	return result
}

// FromDomainEventType конвертирует тип события в response
func FromDomainEventType(et *domain.EventType) *EventTypeResponse {
	resp := &EventTypeResponse{
		ID:           et.ID,
		UserID:       et.UserID,
		Title:        et.Title,
		Description:  et.Description,
		Duration:     et.DurationMinutes,
		Slug:         et.Slug,
		Color:        et.Color,
		IsActive:     et.IsActive,
		BufferBefore: et.BufferBeforeMinutes,
		BufferAfter:  et.BufferAfterMinutes,
		Username:     et.HostUsername,
		Questions:    make([]QuestionResponse, 0, len(et.Questions)),
		CreatedAt:    et.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    et.UpdatedAt.Format(time.RFC3339),
	}

	for _, q := range et.Questions {
		resp.Questions = append(resp.Questions, QuestionResponse{
			ID:           q.ID,
			EventTypeID:  q.EventTypeID,
			Question:     q.Text,
			Required:     q.Required,
			QuestionType: string(q.Type),
		})
	}

	return resp
}

// FromDomainEventTypeList конвертирует список типов событий
func FromDomainEventTypeList(eventTypes []*domain.EventType) []*EventTypeResponse {
	result := make([]*EventTypeResponse, 0, len(eventTypes))
	for _, et := range eventTypes {
		result = append(result, FromDomainEventType(et))
	}
	return result
}
