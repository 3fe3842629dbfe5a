package get_available_days

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	Month    string   `json:"month"`
	Timezone string   `json:"timezone"`
	Days     []string `json:"days"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(username, slug, month string) (*getAvailableDays.Request, error) {
	m, err := time.Parse(domain.MonthFormat, month)
	if err != nil {
		return nil, err
	}

	return &getAvailableDays.Request{
		HostUsername:  username,
		EventTypeSlug: slug,
		Month:         m,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]string, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = d.Format(domain.DateFormat)
	}

	return &AvailableDaysResponse{
		Month:    resp.Month.Format(domain.MonthFormat),
		Timezone: resp.Timezone,
		Days:     days,
	}
}
