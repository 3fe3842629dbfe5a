package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

// Service сервис расписаний хоста, недельных часов и исключений
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(availabilityRepo AvailabilityRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// List получает все расписания хоста с часами и исключениями
func (s *Service) List(ctx context.Context, hostID int64) ([]*models.AvailabilityResponse, error) {
	list, err := s.availabilityRepo.List(ctx, hostID)
	if err != nil {
		s.logger.Error("List: failed to list availability for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if err := s.attachDetails(ctx, list); err != nil {
		s.logger.Error("List: failed to load schedules for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAvailabilityList(list), nil
}

// Get получает расписание хоста с часами и исключениями
func (s *Service) Get(ctx context.Context, hostID, id int64) (*models.AvailabilityResponse, error) {
	a, err := s.getAvailability(ctx, "Get", hostID, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachDetails(ctx, []*domain.Availability{a}); err != nil {
		s.logger.Error("Get: failed to load schedules for availability id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAvailability(a), nil
}

// Create создает расписание; новое расписание по умолчанию снимает признак с предыдущего
func (s *Service) Create(ctx context.Context, hostID int64, req *models.CreateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	a := req.ToDomainAvailability(hostID)

	s.logger.Info("Create: creating availability name=%s, timezone=%s for host id=%d", a.Name, a.Timezone, hostID)

	schedules, err := models.ToDomainSchedules(req.Schedules)
	if err != nil {
		s.logger.Warn("Create: invalid schedule times: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateAvailability(a, schedules); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Availability
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if a.IsDefault {
			if err := s.availabilityRepo.ClearDefault(ctx, hostID, nil); err != nil {
				return err
			}
		}

		var err error
		created, err = s.availabilityRepo.Create(ctx, a)
		if err != nil {
			return err
		}

		created.Schedules, err = s.availabilityRepo.ReplaceSchedules(ctx, created.ID, schedules)
		return err
	})
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrDuplicateDay) {
			s.logger.Warn("Create: duplicate day of week in schedules")
			return nil, fmt.Errorf("%w: duplicate day of week", ErrInvalidInput)
		}
		s.logger.Error("Create: failed to create availability for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	created.Overrides = []domain.DateOverride{}

	s.logger.Info("Create: successfully created availability id=%d", created.ID)
	return models.FromDomainAvailability(created), nil
}

// Update обновляет расписание; часы заменяются целиком, только если переданы
func (s *Service) Update(ctx context.Context, hostID, id int64, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Update: updating availability id=%d for host id=%d", id, hostID)

	a, err := s.getAvailability(ctx, "Update", hostID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(a)

	var schedules []domain.WeeklySchedule
	if req.Schedules != nil {
		schedules, err = models.ToDomainSchedules(*req.Schedules)
		if err != nil {
			s.logger.Warn("Update: invalid schedule times: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := validateAvailability(a, schedules); err != nil {
		s.logger.Warn("Update: validation failed for availability id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.Availability
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Снимаем признак по умолчанию с остальных расписаний хоста
		if a.IsDefault {
			if err := s.availabilityRepo.ClearDefault(ctx, hostID, &id); err != nil {
				return err
			}
		}

		// 2. Обновляем само расписание
		var err error
		updated, err = s.availabilityRepo.Update(ctx, a)
		if err != nil {
			return err
		}

		// 3. Заменяем недельные часы, если они переданы
		if req.Schedules != nil {
			updated.Schedules, err = s.availabilityRepo.ReplaceSchedules(ctx, id, schedules)
			return err
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityRepo.ErrAvailabilityNotFound):
			s.logger.Warn("Update: availability id=%d not found", id)
			return nil, ErrAvailabilityNotFound
		case errors.Is(err, availabilityRepo.ErrDuplicateDay):
			s.logger.Warn("Update: duplicate day of week in schedules")
			return nil, fmt.Errorf("%w: duplicate day of week", ErrInvalidInput)
		}
		s.logger.Error("Update: failed to update availability id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Schedules == nil {
		if err := s.attachDetails(ctx, []*domain.Availability{updated}); err != nil {
			s.logger.Error("Update: failed to load schedules for availability id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	} else {
		overrides, err := s.availabilityRepo.GetOverrides(ctx, []int64{id})
		if err != nil {
			s.logger.Error("Update: failed to load overrides for availability id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		updated.Overrides = overrides[id]
	}

	s.logger.Info("Update: successfully updated availability id=%d", id)
	return models.FromDomainAvailability(updated), nil
}

// Delete удаляет расписание вместе с часами и исключениями
func (s *Service) Delete(ctx context.Context, hostID, id int64) error {
	s.logger.Info("Delete: deleting availability id=%d for host id=%d", id, hostID)

	if err := s.availabilityRepo.Delete(ctx, hostID, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Delete: availability id=%d not found", id)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: failed to delete availability id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted availability id=%d", id)
	return nil
}

// UpsertOverride создает или заменяет исключение на дату
// Второе значение true, если исключение создано, а не заменено
func (s *Service) UpsertOverride(ctx context.Context, hostID, availabilityID int64, req *models.OverrideRequest) (*models.OverrideResponse, bool, error) {
	s.logger.Info("UpsertOverride: date=%s for availability id=%d", req.Date, availabilityID)

	if _, err := s.getAvailability(ctx, "UpsertOverride", hostID, availabilityID); err != nil {
		return nil, false, err
	}

	override, err := req.ToDomainOverride(availabilityID)
	if err != nil {
		s.logger.Warn("UpsertOverride: invalid override: %v", err)
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateOverride(override); err != nil {
		s.logger.Warn("UpsertOverride: validation failed: %v", err)
		return nil, false, err
	}

	saved, created, err := s.availabilityRepo.UpsertOverride(ctx, override)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("UpsertOverride: availability id=%d not found", availabilityID)
			return nil, false, ErrAvailabilityNotFound
		}
		s.logger.Error("UpsertOverride: failed to save override for availability id=%d: %v", availabilityID, err)
		return nil, false, fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertOverride: saved override id=%d (created=%t)", saved.ID, created)
	resp := models.FromDomainOverride(saved)
	return &resp, created, nil
}

// DeleteOverride удаляет исключение расписания хоста
func (s *Service) DeleteOverride(ctx context.Context, hostID, availabilityID, overrideID int64) error {
	s.logger.Info("DeleteOverride: deleting override id=%d of availability id=%d", overrideID, availabilityID)

	if err := s.availabilityRepo.DeleteOverride(ctx, hostID, availabilityID, overrideID); err != nil {
		if errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: override id=%d not found", overrideID)
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: failed to delete override id=%d: %v", overrideID, err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) getAvailability(ctx context.Context, op string, hostID, id int64) (*domain.Availability, error) {
	a, err := s.availabilityRepo.GetByID(ctx, hostID, id)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("%s: availability id=%d not found for host id=%d", op, id, hostID)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("%s: repository error for availability id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return a, nil
}

// attachDetails догружает часы и исключения пачкой для списка расписаний
func (s *Service) attachDetails(ctx context.Context, list []*domain.Availability) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}

	schedules, err := s.availabilityRepo.GetSchedules(ctx, ids)
	if err != nil {
		return err
	}
	overrides, err := s.availabilityRepo.GetOverrides(ctx, ids)
	if err != nil {
		return err
	}

	for _, a := range list {
		a.Schedules = schedules[a.ID]
		a.Overrides = overrides[a.ID]
	}
	return nil
}
