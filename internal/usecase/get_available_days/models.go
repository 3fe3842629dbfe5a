package get_available_days

import "time"

// Request модель запроса дней со свободными слотами
type Request struct {
	HostUsername  string
	EventTypeSlug string
	Month         time.Time // Любая дата внутри месяца, используются год и месяц
}

// Response модель ответа
type Response struct {
	Month    time.Time   // Первое число месяца в зоне доступности
	Timezone string      // Зона доступности
	Days     []time.Time // Даты месяца, на которые есть хотя бы один слот
}
