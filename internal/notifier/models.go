package notifier

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Kind тип уведомления
type Kind string

const (
	KindConfirmed   Kind = "confirmed"
	KindCancelled   Kind = "cancelled"
	KindRescheduled Kind = "rescheduled"
	KindReminder    Kind = "reminder"
)

// Subject тема события в шине
func (k Kind) Subject() string {
	switch k {
	case KindConfirmed:
		return "bookings.created"
	case KindCancelled:
		return "bookings.cancelled"
	case KindRescheduled:
		return "bookings.rescheduled"
	default:
		return "bookings." + string(k)
	}
}

// Message письмо одному получателю
type Message struct {
	ToEmail     string
	ToName      string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Attachment вложение письма
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// BookingEvent событие, публикуемое в шину
type BookingEvent struct {
	Kind          Kind       `json:"kind"`
	UID           string     `json:"uid"`
	EventTypeID   int64      `json:"event_type_id"`
	EventTitle    string     `json:"event_title"`
	BookerName    string     `json:"booker_name"`
	BookerEmail   string     `json:"booker_email"`
	HostEmail     string     `json:"host_email"`
	Status        string     `json:"status"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	PreviousStart *time.Time `json:"previous_start,omitempty"`
	PreviousEnd   *time.Time `json:"previous_end,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

type job struct {
	kind     Kind
	details  *domain.BookingDetails
	previous *domain.Interval
}

func newBookingEvent(j job, now time.Time) BookingEvent {
	d := j.details
	event := BookingEvent{
		Kind:        j.kind,
		UID:         d.UID,
		EventTypeID: d.EventTypeID,
		EventTitle:  d.EventTitle,
		BookerName:  d.BookerName,
		BookerEmail: d.BookerEmail,
		HostEmail:   d.HostEmail,
		Status:      string(d.Status),
		StartTime:   d.StartTime.UTC(),
		EndTime:     d.EndTime.UTC(),
		OccurredAt:  now.UTC(),
	}
	if j.previous != nil {
		start, end := j.previous.Start.UTC(), j.previous.End.UTC()
		event.PreviousStart = &start
		event.PreviousEnd = &end
	}
	return event
}
