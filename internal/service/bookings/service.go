package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями хоста
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	calendar     CalendarExporter
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	calendar CalendarExporter,
	metrics Metrics,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		calendar:     calendar,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List получает бронирования хоста
// Фильтры: статус (confirmed/cancelled) и период (upcoming/past/all)
func (s *Service) List(ctx context.Context, hostID int64, req *models.ListBookingsRequest) ([]*models.BookingResponse, error) {
	filter, err := req.ToDomainFilter(hostID, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("List: invalid filter for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if err := s.attachAnswers(ctx, list); err != nil {
		s.logger.Error("List: failed to load answers for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingDetailsList(list), nil
}

// GetByUID получает бронирование по публичному идентификатору
func (s *Service) GetByUID(ctx context.Context, uid string) (*models.BookingResponse, error) {
	details, err := s.loadDetails(ctx, "GetByUID", uid)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBookingDetails(details), nil
}

// Cancel отменяет бронирование
// Повторная отмена возвращает бронирование без изменений и не отправляет уведомление
func (s *Service) Cancel(ctx context.Context, uid string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking uid=%s", uid)

	alreadyCancelled := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// Строка блокируется до конца транзакции, параллельная отмена увидит итоговый статус
		booking, err := s.bookingRepo.GetByUID(ctx, uid)
		if err != nil {
			return err
		}

		if booking.IsCancelled() {
			alreadyCancelled = true
			return nil
		}

		return s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCancelled)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking uid=%s not found", uid)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	details, err := s.loadDetails(ctx, "Cancel", uid)
	if err != nil {
		return nil, err
	}

	if alreadyCancelled {
		s.logger.Info("Cancel: booking uid=%s already cancelled", uid)
		return models.FromDomainBookingDetails(details), nil
	}

	s.metrics.IncBooking("cancelled")
	s.notifier.NotifyCancelled(details)

	s.logger.Info("Cancel: successfully cancelled booking uid=%s", uid)
	return models.FromDomainBookingDetails(details), nil
}

// Calendar собирает .ics файл бронирования
func (s *Service) Calendar(ctx context.Context, uid string) (string, error) {
	details, err := s.loadDetails(ctx, "Calendar", uid)
	if err != nil {
		return "", err
	}
	return s.calendar.Export(details), nil
}

func (s *Service) loadDetails(ctx context.Context, op, uid string) (*domain.BookingDetails, error) {
	details, err := s.bookingRepo.GetDetailsByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking uid=%s not found", op, uid)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking uid=%s: %v", op, uid, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if err := s.attachAnswers(ctx, []*domain.BookingDetails{details}); err != nil {
		s.logger.Error("%s: failed to load answers for booking uid=%s: %v", op, uid, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return details, nil
}

func (s *Service) attachAnswers(ctx context.Context, list []*domain.BookingDetails) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
	}

	answers, err := s.bookingRepo.GetAnswers(ctx, ids)
	if err != nil {
		return err
	}

	for _, d := range list {
		d.Answers = answers[d.ID]
	}
	return nil
}
