package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// ListBookingsRequest фильтр списка бронирований хоста
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"`
	Type   string  `json:"type,omitempty"`
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListBookingsRequest) ToDomainFilter(hostID int64, now time.Time) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		HostID: hostID,
		Now:    now,
	}

	if r.Status != nil && *r.Status != "" {
		status := domain.BookingStatus(*r.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("unknown status %q", *r.Status)
		}
		filter.Status = &status
	}

	period := domain.BookingPeriod(r.Type)
	if r.Type == "all" {
		period = domain.PeriodAll
	}
	if !period.IsValid() {
		return filter, fmt.Errorf("unknown type %q", r.Type)
	}
	filter.Period = period

	return filter, nil
}

// Response модели

// AnswerResponse ответ на вопрос формы
type AnswerResponse struct {
	ID         int64  `json:"id"`
	BookingID  int64  `json:"booking_id"`
	QuestionID int64  `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// BookingResponse бронирование с данными типа события и хоста
type BookingResponse struct {
	ID           int64            `json:"id"`
	UID          string           `json:"uid"`
	EventTypeID  int64            `json:"event_type_id"`
	BookerName   string           `json:"booker_name"`
	BookerEmail  string           `json:"booker_email"`
	StartTime    string           `json:"start_time"`
	EndTime      string           `json:"end_time"`
	Status       string           `json:"status"`
	Notes        string           `json:"notes"`
	EventTitle   string           `json:"event_title"`
	EventSlug    string           `json:"event_slug"`
	Color        string           `json:"color"`
	Duration     int              `json:"duration"`
	HostName     string           `json:"host_name"`
	HostUsername string           `json:"host_username"`
	HostEmail    string           `json:"host_email"`
	HostTimezone string           `json:"host_timezone"`
	Answers      []AnswerResponse `json:"answers"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

// FromDomainBookingDetails конвертирует бронирование в response
func FromDomainBookingDetails(d *domain.BookingDetails) *BookingResponse {
	resp := &BookingResponse{
		ID:           d.ID,
		UID:          d.UID,
		EventTypeID:  d.EventTypeID,
		BookerName:   d.BookerName,
		BookerEmail:  d.BookerEmail,
		StartTime:    d.StartTime.UTC().Format(time.RFC3339),
		EndTime:      d.EndTime.UTC().Format(time.RFC3339),
		Status:       string(d.Status),
		Notes:        d.Notes,
		EventTitle:   d.EventTitle,
		EventSlug:    d.EventSlug,
		Color:        d.EventColor,
		Duration:     d.DurationMinutes,
		HostName:     d.HostName,
		HostUsername: d.HostUsername,
		HostEmail:    d.HostEmail,
		HostTimezone: d.HostTimezone,
		Answers:      make([]AnswerResponse, 0, len(d.Answers)),
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.UTC().Format(time.RFC3339),
	}

	for _, a := range d.Answers {
		resp.Answers = append(resp.Answers, AnswerResponse{
			ID:         a.ID,
			BookingID:  a.BookingID,
			QuestionID: a.QuestionID,
			Question:   a.Question,
			Answer:     a.Answer,
		})
	}

	return resp
}

// FromDomainBookingDetailsList конвертирует список бронирований
func FromDomainBookingDetailsList(list []*domain.BookingDetails) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(list))
	for _, d := range list {
		result = append(result, FromDomainBookingDetails(d))
	}
	return result
}
