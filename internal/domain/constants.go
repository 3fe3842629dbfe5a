package domain

// Параметры генерации слотов
const (
	// SlotStepMinutes шаг перебора кандидатов в слоты
	SlotStepMinutes = 15
)

// Значения по умолчанию
const (
	DefaultDurationMinutes  = 30
	DefaultColor            = "#7C3AED"
	DefaultAvailabilityName = "Custom Schedule"
	DefaultTimezone         = "UTC"
	DefaultQuestionType     = QuestionTypeText
)

// Ограничения бизнес-валидации
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 1440 // сутки
	MaxBufferMinutes   = 1440
	MaxNotesLength     = 2000
	MaxAnswerLength    = 2000
)

// Форматы времени
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
