package send_reminders

import (
	"context"
	"fmt"
)

// UseCase use case рассылки напоминаний о предстоящих встречах
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выбирает бронирования, начинающиеся в ближайшие Lead, и ставит напоминания в очередь
// Отметка reminder_sent_at ставится до постановки в очередь, повторный проход бронирование не выберет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Lead <= 0 {
		return nil, fmt.Errorf("%w: lead must be positive, got %s", ErrInvalidInput, req.Lead)
	}

	// 1. Окно (now, now+lead]
	now := uc.timeProvider.Now()
	due, err := uc.bookingRepo.GetDueReminders(ctx, now, now.Add(req.Lead))
	if err != nil {
		uc.logger.Error("SendReminders: failed to get due bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get due bookings: %v", ErrInternal, err)
	}

	resp := &Response{Found: len(due)}
	if len(due) == 0 {
		return resp, nil
	}

	// 2. Отмечаем и ставим в очередь по одному
	for _, details := range due {
		marked, err := uc.bookingRepo.MarkReminderSent(ctx, details.ID, now)
		if err != nil {
			uc.logger.Error("SendReminders: failed to mark booking uid=%s: %v", details.UID, err)
			resp.Failed++
			continue
		}
		if !marked {
			// Уже отмечено параллельным проходом
			continue
		}

		uc.notifier.NotifyReminder(details)
		resp.Queued++
	}

	uc.logger.Info("SendReminders: found=%d, queued=%d, failed=%d", resp.Found, resp.Queued, resp.Failed)

	return resp, nil
}
