package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event_type"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerrors"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	eventTypeRepo EventTypeRepository
	bookingRepo   BookingRepository
	notifier      Notifier
	metrics       Metrics
	txManager     TransactionManager
	guardMode     domain.GuardMode
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventTypeRepo EventTypeRepository,
	bookingRepo BookingRepository,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	guardMode domain.GuardMode,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventTypeRepo: eventTypeRepo,
		bookingRepo:   bookingRepo,
		notifier:      notifier,
		metrics:       metrics,
		txManager:     txManager,
		guardMode:     guardMode,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute переносит подтвержденное бронирование на новый интервал
// Проверка пересечений исключает само переносимое бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: uid=%s, start=%s, end=%s",
		req.UID, req.StartTime.Format(timeLogFormat), req.EndTime.Format(timeLogFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var previous domain.Interval

	// 2. Проверка и обновление в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByUID(txCtx, req.UID)
		if err != nil {
			return err
		}
		if !booking.CanBeRescheduled() {
			return ErrCannotReschedule
		}
		previous = booking.Interval()

		// 2.2. Тип события нужен для буферов в режиме buffered
		eventType, err := uc.eventTypeRepo.GetByID(txCtx, req.HostID, booking.EventTypeID)
		if err != nil {
			return err
		}

		// 2.3. Сериализуем запись бронирований одного типа события
		if err := uc.bookingRepo.LockEventType(txCtx, booking.EventTypeID); err != nil {
			return fmt.Errorf("failed to lock event type: %w", err)
		}

		// 2.4. Проверяем пересечения, не считая само бронирование
		window := uc.guardMode.CheckWindow(req.StartTime, req.EndTime, eventType)
		conflict, err := uc.bookingRepo.HasConflict(txCtx, booking.EventTypeID, window.Start, window.End, &booking.ID)
		if err != nil {
			return fmt.Errorf("failed to check conflicts: %w", err)
		}
		if conflict {
			return ErrSlotUnavailable
		}

		// 2.5. Сохраняем новое время
		if err := uc.bookingRepo.UpdateTimes(txCtx, booking.ID, req.StartTime.UTC(), req.EndTime.UTC()); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			uc.logger.Warn("RescheduleBooking: booking uid=%s not found", req.UID)
			return nil, ErrBookingNotFound
		case errors.Is(err, eventTypeRepo.ErrEventTypeNotFound):
			uc.logger.Warn("RescheduleBooking: event type of booking uid=%s not found", req.UID)
			return nil, ErrBookingNotFound
		case errors.Is(err, ErrCannotReschedule):
			uc.logger.Warn("RescheduleBooking: booking uid=%s is not confirmed", req.UID)
			return nil, ErrCannotReschedule
		case isSlotConflict(err):
			uc.metrics.IncBooking("conflict")
			uc.logger.Warn("RescheduleBooking: slot unavailable for uid=%s: %v", req.UID, err)
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("RescheduleBooking: transaction failed for uid=%s: %v", req.UID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncBooking("rescheduled")
	uc.logger.Info("RescheduleBooking: successfully rescheduled booking uid=%s", req.UID)

	// 3. Загружаем бронирование с данными хоста
	details, err := uc.bookingRepo.GetDetailsByUID(ctx, req.UID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to reload booking uid=%s: %v", req.UID, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	answers, err := uc.bookingRepo.GetAnswers(ctx, []int64{details.ID})
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to reload answers for uid=%s: %v", req.UID, err)
		return nil, fmt.Errorf("%w: failed to reload answers: %v", ErrInternal, err)
	}
	details.Answers = answers[details.ID]

	// 4. Ставим уведомление о переносе в очередь
	uc.notifier.NotifyRescheduled(details, previous)

	return &Response{Booking: details, Previous: previous}, nil
}

func isSlotConflict(err error) bool {
	return errors.Is(err, ErrSlotUnavailable) ||
		errors.Is(err, bookingRepo.ErrSlotConflict) ||
		errors.Is(err, bookingRepo.ErrSerialization) ||
		pgerrors.IsExclusionViolation(err) ||
		pgerrors.IsSerializationFailure(err)
}

const timeLogFormat = "2006-01-02T15:04Z07:00"
