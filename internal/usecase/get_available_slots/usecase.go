package get_available_slots

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

// UseCase use case для получения доступных слотов для бронирования
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

// Execute выполняет use case получения доступных слотов
// Слоты пересчитываются при каждом вызове
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: host=%s, event_type=%s, date=%s",
		req.HostUsername, req.EventTypeSlug, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем хоста
	host, err := uc.userRepo.GetByUsername(ctx, req.HostUsername)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetAvailableSlots: host=%s not found", req.HostUsername)
			return nil, ErrHostNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get host=%s: %v", req.HostUsername, err)
		return nil, fmt.Errorf("%w: failed to get host: %v", ErrInternal, err)
	}

	// 4. Получаем активный тип события
	eventType, err := uc.eventTypeRepo.GetBySlug(ctx, host.ID, req.EventTypeSlug, true)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: event type=%s not found for host=%s", req.EventTypeSlug, req.HostUsername)
			return nil, ErrEventTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get event type=%s: %v", req.EventTypeSlug, err)
		return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
	}

	// 5. Получаем расписание по умолчанию; без него слотов нет
	availability, err := uc.availabilityRepo.GetDefault(ctx, host.ID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Info("GetAvailableSlots: host=%s has no default availability", req.HostUsername)
			return &Response{Date: req.Date, Timezone: host.Timezone, Slots: []Slot{}}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get default availability for host=%s: %v", req.HostUsername, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	loc, err := availability.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: availability id=%d has invalid timezone: %v", availability.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	day := domain.DayBounds(req.Date, loc)

	// 6. Параллельно загружаем часы, исключение на дату и бронирования дня
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
		overrides, err := uc.availabilityRepo.GetOverridesInRange(gCtx, availability.ID, day.Start, day.Start)
		if err != nil {
			return fmt.Errorf("failed to get overrides: %w", err)
		}
		availability.Overrides = overrides
		return nil
	})

	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.GetConfirmedByEventType(gCtx, eventType.ID, day.Start, day.End)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load data for event type id=%d: %v", eventType.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 7. Вычисляем свободные слоты
	slots, err := domain.ResolveSlots(eventType, availability, bookings, day.Start, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve slots for event type id=%d: %v", eventType.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: found %d slots for event type id=%d on %s",
		len(slots), eventType.ID, day.Start.Format(domain.DateFormat))

	return &Response{
		Date:     day.Start,
		Timezone: availability.Timezone,
		Slots:    toSlots(slots, loc),
	}, nil
}

func toSlots(slots []domain.Slot, loc *time.Location) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			Time:  s.Start.In(loc).Format(domain.TimeFormat),
			Start: s.Start,
			End:   s.End,
		})
	}
	return result
}
