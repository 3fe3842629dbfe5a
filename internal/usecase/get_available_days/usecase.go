package get_available_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event_type"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
)

// UseCase use case для получения дней месяца со свободными слотами
type UseCase struct {
	userRepo         UserRepository
	eventTypeRepo    EventTypeRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	eventTypeRepo EventTypeRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:         userRepo,
		eventTypeRepo:    eventTypeRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: host=%s, event_type=%s, month=%s",
		req.HostUsername, req.EventTypeSlug, req.Month.Format(domain.MonthFormat))

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Хост и активный тип события
	host, err := uc.userRepo.GetByUsername(ctx, req.HostUsername)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetAvailableDays: host=%s not found", req.HostUsername)
			return nil, ErrHostNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get host=%s: %v", req.HostUsername, err)
		return nil, fmt.Errorf("%w: failed to get host: %v", ErrInternal, err)
	}

	eventType, err := uc.eventTypeRepo.GetBySlug(ctx, host.ID, req.EventTypeSlug, true)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("GetAvailableDays: event type=%s not found for host=%s", req.EventTypeSlug, req.HostUsername)
			return nil, ErrEventTypeNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get event type=%s: %v", req.EventTypeSlug, err)
		return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
	}

	// 3. Расписание по умолчанию; без него дней нет
	availability, err := uc.availabilityRepo.GetDefault(ctx, host.ID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Info("GetAvailableDays: host=%s has no default availability", req.HostUsername)
			month := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
			return &Response{Month: month, Timezone: host.Timezone, Days: []time.Time{}}, nil
		}
		uc.logger.Error("GetAvailableDays: failed to get default availability for host=%s: %v", req.HostUsername, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	loc, err := availability.Location()
	if err != nil {
		uc.logger.Error("GetAvailableDays: availability id=%d has invalid timezone: %v", availability.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	monthStart := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, loc)
	month := domain.Interval{Start: monthStart, End: monthStart.AddDate(0, 1, 0)}
	lastDay := month.End.AddDate(0, 0, -1)

	// 4. Параллельно загружаем часы, исключения и бронирования месяца
	var bookings []*domain.Booking
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		schedules, err := uc.availabilityRepo.GetSchedules(gCtx, []int64{availability.ID})
		if err != nil {
			return fmt.Errorf("failed to get schedules: %w", err)
		}
		availability.Schedules = schedules[availability.ID]
		return nil
	})

	g.Go(func() error {
		overrides, err := uc.availabilityRepo.GetOverridesInRange(gCtx, availability.ID, month.Start, lastDay)
		if err != nil {
			return fmt.Errorf("failed to get overrides: %w", err)
		}
		availability.Overrides = overrides
		return nil
	})

	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.GetConfirmedByEventType(gCtx, eventType.ID, month.Start, month.End)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableDays: failed to load data for event type id=%d: %v", eventType.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Кандидаты из недельного правила и исключений
	candidates, err := candidateDates(availability, month)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to expand schedule for availability id=%d: %v", availability.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Каждый кандидат подтверждаем вычислением слотов
	days := make([]time.Time, 0, len(candidates))
	for _, date := range candidates {
		day := domain.DayBounds(date, loc)

		slots, err := domain.ResolveSlots(eventType, availability, bookingsWithin(bookings, day), day.Start, now)
		if err != nil {
			uc.logger.Error("GetAvailableDays: failed to resolve slots on %s: %v", day.Start.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if len(slots) > 0 {
			days = append(days, day.Start)
		}
	}

	uc.logger.Info("GetAvailableDays: %d of %d candidate days have slots for event type id=%d",
		len(days), len(candidates), eventType.ID)

	return &Response{
		Month:    month.Start,
		Timezone: availability.Timezone,
		Days:     days,
	}, nil
}

// bookingsWithin бронирования, начинающиеся внутри дня
func bookingsWithin(bookings []*domain.Booking, day domain.Interval) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if !b.StartTime.Before(day.Start) && b.StartTime.Before(day.End) {
			result = append(result, b)
		}
	}
	return result
}
