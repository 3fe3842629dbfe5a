package event_types

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event_type"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
)

// Service сервис управления типами событий хоста
type Service struct {
	eventTypeRepo EventTypeRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса типов событий
func NewService(eventTypeRepo EventTypeRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		eventTypeRepo: eventTypeRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// List получает все типы событий хоста вместе с вопросами
func (s *Service) List(ctx context.Context, hostID int64) ([]*models.EventTypeResponse, error) {
	eventTypes, err := s.eventTypeRepo.List(ctx, hostID, false)
	if err != nil {
		s.logger.Error("List: failed to list event types for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if err := s.attachQuestions(ctx, eventTypes); err != nil {
		s.logger.Error("List: failed to get questions for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEventTypeList(eventTypes), nil
}

// Get получает тип события хоста с вопросами
func (s *Service) Get(ctx context.Context, hostID, id int64) (*models.EventTypeResponse, error) {
	et, err := s.getEventType(ctx, "Get", hostID, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachQuestions(ctx, []*domain.EventType{et}); err != nil {
		s.logger.Error("Get: failed to get questions for event type id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEventType(et), nil
}

// Create создает тип события вместе с вопросами в одной транзакции
func (s *Service) Create(ctx context.Context, hostID int64, req *models.CreateEventTypeRequest) (*models.EventTypeResponse, error) {
	et := req.ToDomainEventType(hostID)
	questions := models.ToDomainQuestions(req.Questions)

	s.logger.Info("Create: creating event type slug=%s for host id=%d", et.Slug, hostID)

	if err := validateEventType(et, questions); err != nil {
		s.logger.Warn("Create: validation failed for slug=%s: %v", et.Slug, err)
		return nil, err
	}

	if err := s.ensureSlugFree(ctx, "Create", hostID, et.Slug, nil); err != nil {
		return nil, err
	}

	var created *domain.EventType
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.eventTypeRepo.Create(ctx, et)
		if err != nil {
			return err
		}

		created.Questions, err = s.eventTypeRepo.ReplaceQuestions(ctx, created.ID, questions)
		return err
	})
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrDuplicateSlug) {
			s.logger.Warn("Create: slug=%s already taken for host id=%d", et.Slug, hostID)
			return nil, ErrDuplicateSlug
		}
		s.logger.Error("Create: failed to create event type slug=%s: %v", et.Slug, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created event type id=%d, slug=%s", created.ID, created.Slug)
	return models.FromDomainEventType(created), nil
}

// Update обновляет тип события; вопросы заменяются целиком, только если переданы
func (s *Service) Update(ctx context.Context, hostID, id int64, req *models.UpdateEventTypeRequest) (*models.EventTypeResponse, error) {
	s.logger.Info("Update: updating event type id=%d for host id=%d", id, hostID)

	et, err := s.getEventType(ctx, "Update", hostID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(et)

	var questions []domain.Question
	if req.Questions != nil {
		questions = models.ToDomainQuestions(*req.Questions)
	}

	if err := validateEventType(et, questions); err != nil {
		s.logger.Warn("Update: validation failed for event type id=%d: %v", id, err)
		return nil, err
	}

	if err := s.ensureSlugFree(ctx, "Update", hostID, et.Slug, &id); err != nil {
		return nil, err
	}

	var updated *domain.EventType
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.eventTypeRepo.Update(ctx, et)
		if err != nil {
			return err
		}

		if req.Questions != nil {
			updated.Questions, err = s.eventTypeRepo.ReplaceQuestions(ctx, id, questions)
			return err
		}

		byEventType, err := s.eventTypeRepo.GetQuestions(ctx, []int64{id})
		if err != nil {
			return err
		}
		updated.Questions = byEventType[id]
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, eventTypeRepo.ErrEventTypeNotFound):
			s.logger.Warn("Update: event type id=%d not found", id)
			return nil, ErrEventTypeNotFound
		case errors.Is(err, eventTypeRepo.ErrDuplicateSlug):
			s.logger.Warn("Update: slug=%s already taken for host id=%d", et.Slug, hostID)
			return nil, ErrDuplicateSlug
		}
		s.logger.Error("Update: failed to update event type id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated event type id=%d", id)
	return models.FromDomainEventType(updated), nil
}

// Delete удаляет тип события; вопросы и бронирования удаляются каскадно
func (s *Service) Delete(ctx context.Context, hostID, id int64) error {
	s.logger.Info("Delete: deleting event type id=%d for host id=%d", id, hostID)

	if err := s.eventTypeRepo.Delete(ctx, hostID, id); err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			s.logger.Warn("Delete: event type id=%d not found", id)
			return ErrEventTypeNotFound
		}
		s.logger.Error("Delete: failed to delete event type id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted event type id=%d", id)
	return nil
}

func (s *Service) getEventType(ctx context.Context, op string, hostID, id int64) (*domain.EventType, error) {
	et, err := s.eventTypeRepo.GetByID(ctx, hostID, id)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			s.logger.Warn("%s: event type id=%d not found for host id=%d", op, id, hostID)
			return nil, ErrEventTypeNotFound
		}
		s.logger.Error("%s: repository error for event type id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return et, nil
}

func (s *Service) ensureSlugFree(ctx context.Context, op string, hostID int64, slug string, excludeID *int64) error {
	exists, err := s.eventTypeRepo.SlugExists(ctx, hostID, slug, excludeID)
	if err != nil {
		s.logger.Error("%s: failed to check slug=%s: %v", op, slug, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	if exists {
		s.logger.Warn("%s: slug=%s already taken for host id=%d", op, slug, hostID)
		return ErrDuplicateSlug
	}
	return nil
}

func (s *Service) attachQuestions(ctx context.Context, eventTypes []*domain.EventType) error {
	if len(eventTypes) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(eventTypes))
	for _, et := range eventTypes {
		ids = append(ids, et.ID)
	}

	byEventType, err := s.eventTypeRepo.GetQuestions(ctx, ids)
	if err != nil {
		return err
	}

	for _, et := range eventTypes {
		et.Questions = byEventType[et.ID]
	}
	return nil
}
