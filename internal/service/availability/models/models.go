package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модели

// ScheduleRequest рабочие часы на день недели
type ScheduleRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// CreateAvailabilityRequest запрос на создание расписания
type CreateAvailabilityRequest struct {
	Name      string            `json:"name" validate:"max=255"`
	Timezone  string            `json:"timezone"`
	IsDefault bool              `json:"is_default"`
	Schedules []ScheduleRequest `json:"schedules" validate:"omitempty,dive"`
}

// UpdateAvailabilityRequest запрос на обновление расписания
// Незаданные поля сохраняют текущие значения, Schedules == nil оставляет часы без изменений
type UpdateAvailabilityRequest struct {
	Name      *string            `json:"name,omitempty" validate:"omitempty,max=255"`
	Timezone  *string            `json:"timezone,omitempty"`
	IsDefault *bool              `json:"is_default,omitempty"`
	Schedules *[]ScheduleRequest `json:"schedules,omitempty" validate:"omitempty,dive"`
}

// OverrideRequest запрос на создание или замену исключения на дату
type OverrideRequest struct {
	Date      string  `json:"date" validate:"required"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	IsBlocked bool    `json:"is_blocked"`
}

// Response модели

// ScheduleResponse рабочие часы на день недели
type ScheduleResponse struct {
	ID             int64  `json:"id"`
	AvailabilityID int64  `json:"availability_id"`
	DayOfWeek      int    `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

// OverrideResponse исключение на дату
type OverrideResponse struct {
	ID             int64   `json:"id"`
	AvailabilityID int64   `json:"availability_id"`
	Date           string  `json:"date"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	IsBlocked      bool    `json:"is_blocked"`
}

// AvailabilityResponse расписание с часами и исключениями
type AvailabilityResponse struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	Name      string             `json:"name"`
	Timezone  string             `json:"timezone"`
	IsDefault bool               `json:"is_default"`
	Schedules []ScheduleResponse `json:"schedules"`
	Overrides []OverrideResponse `json:"overrides"`
	CreatedAt string             `json:"created_at"`
}

// Конвертеры

// ToDomainAvailability конвертирует запрос на создание с дефолтами
func (r *CreateAvailabilityRequest) ToDomainAvailability(hostID int64) *domain.Availability {
	a := &domain.Availability{
		UserID:    hostID,
		Name:      strings.TrimSpace(r.Name),
		Timezone:  strings.TrimSpace(r.Timezone),
		IsDefault: r.IsDefault,
	}
	if a.Name == "" {
		a.Name = domain.DefaultAvailabilityName
	}
	if a.Timezone == "" {
		a.Timezone = domain.DefaultTimezone
	}
	return a
}

// ApplyTo применяет заданные поля запроса к расписанию
func (r *UpdateAvailabilityRequest) ApplyTo(a *domain.Availability) {
	if r.Name != nil && strings.TrimSpace(*r.Name) != "" {
		a.Name = strings.TrimSpace(*r.Name)
	}
	if r.Timezone != nil && strings.TrimSpace(*r.Timezone) != "" {
		a.Timezone = strings.TrimSpace(*r.Timezone)
	}
	if r.IsDefault != nil {
		a.IsDefault = *r.IsDefault
	}
}

// ToDomainSchedules нормализует время (HH:MM:SS -> HH:MM) и конвертирует часы
func ToDomainSchedules(schedules []ScheduleRequest) ([]domain.WeeklySchedule, error) {
	result := make([]domain.WeeklySchedule, 0, len(schedules))
	for _, s := range schedules {
		start, err := types.NewTimeStringFromString(s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(s.EndTime)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.WeeklySchedule{
			DayOfWeek: s.DayOfWeek,
			StartTime: start,
			EndTime:   end,
		})
	}
	return result, nil
}

// ToDomainOverride конвертирует исключение; для заблокированного дня часы отбрасываются
func (r *OverrideRequest) ToDomainOverride(availabilityID int64) (*domain.DateOverride, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(r.Date))
	if err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %q", r.Date)
	}

	o := &domain.DateOverride{
		AvailabilityID: availabilityID,
		Date:           date,
		IsBlocked:      r.IsBlocked,
	}
	if r.IsBlocked {
		return o, nil
	}

	if r.StartTime != nil && *r.StartTime != "" {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		o.StartTime = &start
	}
	if r.EndTime != nil && *r.EndTime != "" {
		end, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		o.EndTime = &end
	}

	return o, nil
}

// FromDomainOverride конвертирует исключение в response
func FromDomainOverride(o *domain.DateOverride) OverrideResponse {
	resp := OverrideResponse{
		ID:             o.ID,
		AvailabilityID: o.AvailabilityID,
		Date:           o.Date.Format(domain.DateFormat),
		IsBlocked:      o.IsBlocked,
	}
	if o.StartTime != nil {
		start := o.StartTime.String()
		resp.StartTime = &start
	}
	if o.EndTime != nil {
		end := o.EndTime.String()
		resp.EndTime = &end
	}
	return resp
}

// FromDomainAvailability конвертирует расписание в response
func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Timezone:  a.Timezone,
		IsDefault: a.IsDefault,
		Schedules: make([]ScheduleResponse, 0, len(a.Schedules)),
		Overrides: make([]OverrideResponse, 0, len(a.Overrides)),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}

	for _, s := range a.Schedules {
		resp.Schedules = append(resp.Schedules, ScheduleResponse{
			ID:             s.ID,
			AvailabilityID: s.AvailabilityID,
			DayOfWeek:      s.DayOfWeek,
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
		})
	}
	for i := range a.Overrides {
		resp.Overrides = append(resp.Overrides, FromDomainOverride(&a.Overrides[i]))
	}

	return resp
}

// FromDomainAvailabilityList конвертирует список расписаний
func FromDomainAvailabilityList(list []*domain.Availability) []*AvailabilityResponse {
	result := make([]*AvailabilityResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAvailability(a))
	}
	return result
}
