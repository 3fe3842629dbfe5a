package domain

import "time"

// User хост, которому принадлежат типы событий и расписания
type User struct {
	ID        int64
	Name      string
	Email     string
	Username  string
	Timezone  string
	CreatedAt time.Time
}
