package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event_type"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerrors"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
// под advisory lock на тип события, поэтому из параллельных запросов на один слот проходит ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: event_type=%d, booker=%s, start=%s, end=%s",
		req.EventTypeID, req.BookerEmail, req.StartTime.Format(timeLogFormat), req.EndTime.Format(timeLogFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активный тип события
	eventType, err := uc.eventTypeRepo.GetByID(ctx, req.HostID, req.EventTypeID)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("CreateBooking: event type id=%d not found", req.EventTypeID)
			return nil, ErrEventTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get event type id=%d: %v", req.EventTypeID, err)
		return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
	}
	if !eventType.IsActive {
		uc.logger.Warn("CreateBooking: event type id=%d is inactive", req.EventTypeID)
		return nil, ErrEventTypeNotFound
	}

	// 3. Получаем вопросы и проверяем ответы
	questions, err := uc.eventTypeRepo.GetQuestions(ctx, []int64{eventType.ID})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get questions for event type id=%d: %v", eventType.ID, err)
		return nil, fmt.Errorf("%w: failed to get questions: %v", ErrInternal, err)
	}
	eventType.Questions = questions[eventType.ID]

	answers, err := collectAnswers(eventType, req.Answers)
	if err != nil {
		uc.logger.Warn("CreateBooking: answers rejected: %v", err)
		return nil, err
	}

	window := uc.guardMode.CheckWindow(req.StartTime, req.EndTime, eventType)

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Сериализуем запись бронирований одного типа события
		if err := uc.bookingRepo.LockEventType(txCtx, eventType.ID); err != nil {
			return fmt.Errorf("failed to lock event type: %w", err)
		}

		// 4.2. Проверяем пересечение с подтвержденными бронированиями
		conflict, err := uc.bookingRepo.HasConflict(txCtx, eventType.ID, window.Start, window.End, nil)
		if err != nil {
			return fmt.Errorf("failed to check conflicts: %w", err)
		}
		if conflict {
			return ErrSlotUnavailable
		}

		// 4.3. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UID:         uuid.NewString(),
			EventTypeID: eventType.ID,
			BookerName:  req.BookerName,
			BookerEmail: req.BookerEmail,
			StartTime:   req.StartTime.UTC(),
			EndTime:     req.EndTime.UTC(),
			Status:      domain.StatusConfirmed,
			Notes:       req.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// 4.4. Сохраняем непустые ответы
		if err := uc.bookingRepo.CreateAnswers(txCtx, created.ID, answers); err != nil {
			return fmt.Errorf("failed to create answers: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case isSlotConflict(err):
			uc.metrics.IncBooking("conflict")
			uc.logger.Warn("CreateBooking: slot unavailable for event type id=%d at %s: %v",
				eventType.ID, req.StartTime.Format(timeLogFormat), err)
			return nil, ErrSlotUnavailable
		case errors.Is(err, bookingRepo.ErrEventTypeNotFound):
			uc.logger.Warn("CreateBooking: event type id=%d removed during booking", eventType.ID)
			return nil, ErrEventTypeNotFound
		}
		uc.logger.Error("CreateBooking: transaction failed for event type id=%d: %v", eventType.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncBooking("created")
	uc.logger.Info("CreateBooking: successfully created booking id=%d, uid=%s", result.ID, result.UID)

	// 5. Загружаем бронирование с данными хоста и ставим уведомление в очередь
	details := uc.loadDetails(ctx, result, eventType, answers)
	uc.notifier.NotifyConfirmed(details)

	return &Response{Booking: details}, nil
}

// loadDetails перечитывает бронирование вместе с хостом
// Бронирование уже записано, поэтому ошибка чтения не отменяет результат
func (uc *UseCase) loadDetails(
	ctx context.Context,
	booking *domain.Booking,
	eventType *domain.EventType,
	answers []domain.Answer,
) *domain.BookingDetails {
	details, err := uc.bookingRepo.GetDetailsByID(ctx, booking.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to reload booking id=%d: %v", booking.ID, err)
		details = &domain.BookingDetails{
			Booking:         *booking,
			EventTitle:      eventType.Title,
			EventSlug:       eventType.Slug,
			EventColor:      eventType.Color,
			DurationMinutes: eventType.DurationMinutes,
			HostUsername:    eventType.HostUsername,
		}
		details.Answers = answers
		return details
	}

	stored, err := uc.bookingRepo.GetAnswers(ctx, []int64{booking.ID})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to reload answers for booking id=%d: %v", booking.ID, err)
		details.Answers = answers
		return details
	}
	details.Answers = stored[booking.ID]

	return details
}

// isSlotConflict true для проигравшей гонки: пересечение, EXCLUDE или сбой сериализации
func isSlotConflict(err error) bool {
	return errors.Is(err, ErrSlotUnavailable) ||
		errors.Is(err, bookingRepo.ErrSlotConflict) ||
		errors.Is(err, bookingRepo.ErrSerialization) ||
		pgerrors.IsExclusionViolation(err) ||
		pgerrors.IsSerializationFailure(err)
}

const timeLogFormat = "2006-01-02T15:04Z07:00"
