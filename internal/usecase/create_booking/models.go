package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AnswerInput ответ на вопрос формы бронирования
type AnswerInput struct {
	QuestionID int64
	Answer     string
}

// Request модель запроса на создание бронирования
type Request struct {
	HostID      int64     // ID хоста, которому принадлежит тип события
	EventTypeID int64     // ID типа события
	BookerName  string    // Имя бронирующего
	BookerEmail string    // Email бронирующего
	StartTime   time.Time // Начало встречи
	EndTime     time.Time // Конец встречи (без буферов)
	Notes       string    // Заметки (опционально)
	Answers     []AnswerInput
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.BookingDetails
}
