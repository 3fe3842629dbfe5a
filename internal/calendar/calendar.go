package calendar

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ContentType MIME тип календарного вложения
const ContentType = "text/calendar; charset=utf-8"

// Builder собирает iCalendar (RFC 5545) документы для бронирований
type Builder struct {
	productID string
	uidDomain string
}

// NewBuilder создает сборщик календарей
// uidDomain добавляется к uid бронирования, чтобы UID события был глобально уникален
func NewBuilder(productID, uidDomain string) *Builder {
	return &Builder{
		productID: productID,
		uidDomain: uidDomain,
	}
}

// Invite приглашение для письма: REQUEST для подтвержденного, CANCEL для отмененного
func (b *Builder) Invite(details *domain.BookingDetails) string {
	if details.IsCancelled() {
		return b.build(details, ics.MethodCancel)
	}
	return b.build(details, ics.MethodRequest)
}

// Export файл для скачивания
func (b *Builder) Export(details *domain.BookingDetails) string {
	return b.build(details, ics.MethodPublish)
}

// EventUID UID события календаря для бронирования
func (b *Builder) EventUID(bookingUID string) string {
	if b.uidDomain == "" {
		return bookingUID
	}
	return bookingUID + "@" + b.uidDomain
}

func (b *Builder) build(details *domain.BookingDetails, method ics.Method) string {
	cal := ics.NewCalendar()
	cal.SetProductId(b.productID)
	cal.SetMethod(method)

	event := cal.AddEvent(b.EventUID(details.UID))
	event.SetCreatedTime(details.CreatedAt.UTC())
	event.SetDtStampTime(details.UpdatedAt.UTC())
	event.SetModifiedAt(details.UpdatedAt.UTC())
	event.SetStartAt(details.StartTime.UTC())
	event.SetEndAt(details.EndTime.UTC())
	event.SetSequence(sequence(details))
	event.SetSummary(Summary(details))
	event.SetDescription(description(details))
	event.SetOrganizer("mailto:"+details.HostEmail, ics.WithCN(details.HostName))
	event.AddAttendee(details.BookerEmail,
		ics.CalendarUserTypeIndividual,
		ics.ParticipationRoleReqParticipant,
		ics.ParticipationStatusAccepted,
		ics.WithCN(details.BookerName),
	)

	if details.IsCancelled() {
		event.SetStatus(ics.ObjectStatusCancelled)
	} else {
		event.SetStatus(ics.ObjectStatusConfirmed)
	}

	return cal.Serialize()
}

// Summary заголовок события: "{event} between {booker} and {host}"
func Summary(details *domain.BookingDetails) string {
	return fmt.Sprintf("%s between %s and %s", details.EventTitle, details.BookerName, details.HostName)
}

func description(details *domain.BookingDetails) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Booking %s (%d min)", details.UID, details.DurationMinutes)
	if details.Notes != "" {
		fmt.Fprintf(&sb, "\nNotes: %s", details.Notes)
	}
	for _, a := range details.Answers {
		fmt.Fprintf(&sb, "\n%s: %s", a.Question, a.Answer)
	}
	return sb.String()
}

// sequence растет с каждым изменением бронирования, клиенты заменяют событие с меньшим SEQUENCE
func sequence(details *domain.BookingDetails) int {
	seq := int(details.UpdatedAt.Sub(details.CreatedAt) / time.Second)
	if seq < 0 {
		return 0
	}
	return seq
}
