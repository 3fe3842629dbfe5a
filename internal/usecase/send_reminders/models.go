package send_reminders

import "time"

// Request параметры одного прохода
type Request struct {
	Lead time.Duration // За сколько до начала встречи отправлять напоминание
}

// Response итог прохода
type Response struct {
	Found  int // Бронирований без напоминания в окне
	Queued int // Напоминаний поставлено в очередь
	Failed int // Не удалось отметить отправку
}
