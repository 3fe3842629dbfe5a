package domain

import "time"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking бронирование слота
type Booking struct {
	ID          int64
	UID         string
	EventTypeID int64
	BookerName  string
	BookerEmail string
	StartTime   time.Time
	EndTime     time.Time
	Status      BookingStatus
	Notes       string
	Answers     []Answer

	ReminderSentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed true для подтвержденного бронирования
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled true для отмененного бронирования (терминальный статус)
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeRescheduled переносить можно только подтвержденное бронирование
func (b *Booking) CanBeRescheduled() bool {
	return b.IsConfirmed()
}

// Interval интервал бронирования без буферов
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// Answer ответ на вопрос формы
type Answer struct {
	ID         int64
	BookingID  int64
	QuestionID int64
	Question   string // текст вопроса, заполняется при выборке
	Answer     string
}

// BookingDetails бронирование вместе с типом события и хостом
// Используется в ответах API и в уведомлениях
type BookingDetails struct {
	Booking

	EventTitle      string
	EventSlug       string
	EventColor      string
	DurationMinutes int

	HostName     string
	HostUsername string
	HostEmail    string
	HostTimezone string
}

// BookingPeriod фильтр по времени для списка бронирований
type BookingPeriod string

const (
	PeriodAll      BookingPeriod = ""
	PeriodUpcoming BookingPeriod = "upcoming"
	PeriodPast     BookingPeriod = "past"
)

// IsValid проверяет значение фильтра
func (p BookingPeriod) IsValid() bool {
	return p == PeriodAll || p == PeriodUpcoming || p == PeriodPast
}

// BookingsFilter фильтр списка бронирований хоста
type BookingsFilter struct {
	HostID int64
	Status *BookingStatus
	Period BookingPeriod
	Now    time.Time
}
