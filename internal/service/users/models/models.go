package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// UpdateUserRequest запрос на обновление профиля хоста
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,max=100"`
	Timezone string `json:"timezone" validate:"required,timezone"`
}

// Response модели

// UserResponse профиль хоста
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"created_at"`
}

// PublicUser публичная часть профиля
type PublicUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Timezone string `json:"timezone"`
}

// PublicEventType публичная карточка типа события
type PublicEventType struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     int    `json:"duration"`
	Slug         string `json:"slug"`
	Color        string `json:"color"`
	BufferBefore int    `json:"buffer_before"`
	BufferAfter  int    `json:"buffer_after"`
}

// QuestionResponse вопрос формы бронирования
type QuestionResponse struct {
	ID           int64  `json:"id"`
	EventTypeID  int64  `json:"event_type_id"`
	Question     string `json:"question"`
	Required     bool   `json:"required"`
	QuestionType string `json:"question_type"`
}

// PublicProfileResponse страница хоста со списком активных типов событий
type PublicProfileResponse struct {
	User       PublicUser        `json:"user"`
	EventTypes []PublicEventType `json:"event_types"`
}

// PublicEventResponse страница бронирования конкретного типа события
type PublicEventResponse struct {
	User      PublicUser         `json:"user"`
	EventType PublicEventType    `json:"event_type"`
	Questions []QuestionResponse `json:"questions"`
}

// Конвертеры

// ToDomainUser применяет запрос к профилю хоста
func (r *UpdateUserRequest) ToDomainUser(id int64) *domain.User {
	return &domain.User{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Username: r.Username,
		Timezone: r.Timezone,
	}
}

// FromDomainUser конвертирует доменного пользователя в response
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Username:  u.Username,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainPublicUser оставляет только публичные поля
func FromDomainPublicUser(u *domain.User) PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Timezone: u.Timezone,
	}
}

// FromDomainPublicEventType конвертирует тип события в публичную карточку
func FromDomainPublicEventType(et *domain.EventType) PublicEventType {
	return PublicEventType{
		ID:           et.ID,
		Title:        et.Title,
		Description:  et.Description,
		Duration:     et.DurationMinutes,
		Slug:         et.Slug,
		Color:        et.Color,
		BufferBefore: et.BufferBeforeMinutes,
		BufferAfter:  et.BufferAfterMinutes,
	}
}

// FromDomainQuestions конвертирует вопросы в response
func FromDomainQuestions(questions []domain.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, QuestionResponse{
			ID:           q.ID,
			EventTypeID:  q.EventTypeID,
			Question:     q.Text,
			Required:     q.Required,
			QuestionType: string(q.Type),
		})
	}
	return result
}
