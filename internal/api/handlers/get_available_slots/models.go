package get_available_slots

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string          `json:"date"`
	Timezone string          `json:"timezone"`
	Slots    []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time  string `json:"time"`  // HH:MM в зоне доступности
	Start string `json:"start"` // RFC3339
	End   string `json:"end"`   // RFC3339
}

// queryParams параметры из пути публичной страницы или из query
type queryParams struct {
	username string
	slug     string
	date     string
}

func readParams(r *http.Request) queryParams {
	vars := mux.Vars(r)
	query := r.URL.Query()

	p := queryParams{
		username: vars["username"],
		slug:     vars["slug"],
		date:     query.Get("date"),
	}
	if p.username == "" {
		p.username = query.Get("host_username")
	}
	if p.slug == "" {
		p.slug = query.Get("event_type_slug")
	}
	return p
}

// ToUseCaseRequest создает запрос use case из параметров
func (p queryParams) ToUseCaseRequest() (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, p.date)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		HostUsername:  p.username,
		EventTypeSlug: p.slug,
		Date:          date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:  slot.Time,
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		}
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Timezone: resp.Timezone,
		Slots:    slots,
	}
}
