package get_available_slots

import (
	"time"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	HostUsername  string    // username хоста
	EventTypeSlug string    // slug типа события
	Date          time.Time // Календарная дата в зоне доступности хоста (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time // Дата, на которую запрашивались слоты
	Timezone string    // Зона доступности, в которой построены слоты
	Slots    []Slot    // Список свободных слотов по возрастанию
}

// Slot модель временного слота
type Slot struct {
	Time  string    // Настенное время начала в зоне доступности, HH:MM
	Start time.Time // Начало слота
	End   time.Time // Конец слота
}
