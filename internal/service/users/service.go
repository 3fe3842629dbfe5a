package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event_type"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
)

// Service сервис профиля хоста и публичных страниц
type Service struct {
	userRepo      UserRepository
	eventTypeRepo EventTypeRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, eventTypeRepo EventTypeRepository, logger Logger) *Service {
	return &Service{
		userRepo:      userRepo,
		eventTypeRepo: eventTypeRepo,
		logger:        logger,
	}
}

// Get получает профиль хоста
func (s *Service) Get(ctx context.Context, hostID int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, hostID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Get: host id=%d not found", hostID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Get: repository error for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// Update обновляет профиль хоста
func (s *Service) Update(ctx context.Context, hostID int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating host id=%d, username=%s", hostID, req.Username)

	if _, err := time.LoadLocation(req.Timezone); err != nil {
		s.logger.Warn("Update: invalid timezone=%q for host id=%d", req.Timezone, hostID)
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.Timezone)
	}

	updated, err := s.userRepo.Update(ctx, req.ToDomainUser(hostID))
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			s.logger.Warn("Update: host id=%d not found", hostID)
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrUsernameTaken):
			s.logger.Warn("Update: username=%s already taken", req.Username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Update: repository error for host id=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated host id=%d", hostID)
	return models.FromDomainUser(updated), nil
}

// GetPublicProfile получает публичную страницу хоста с активными типами событий
func (s *Service) GetPublicProfile(ctx context.Context, username string) (*models.PublicProfileResponse, error) {
	user, err := s.getByUsername(ctx, "GetPublicProfile", username)
	if err != nil {
		return nil, err
	}

	eventTypes, err := s.eventTypeRepo.List(ctx, user.ID, true)
	if err != nil {
		s.logger.Error("GetPublicProfile: failed to list event types for host id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: GetPublicProfile - repository error: %v", ErrInternal, err)
	}

	response := &models.PublicProfileResponse{
		User:       models.FromDomainPublicUser(user),
		EventTypes: make([]models.PublicEventType, 0, len(eventTypes)),
	}
	for _, et := range eventTypes {
		response.EventTypes = append(response.EventTypes, models.FromDomainPublicEventType(et))
	}

	return response, nil
}

// GetPublicEvent получает страницу бронирования активного типа события с вопросами
func (s *Service) GetPublicEvent(ctx context.Context, username, slug string) (*models.PublicEventResponse, error) {
	user, err := s.getByUsername(ctx, "GetPublicEvent", username)
	if err != nil {
		return nil, err
	}

	eventType, err := s.eventTypeRepo.GetBySlug(ctx, user.ID, slug, true)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			s.logger.Warn("GetPublicEvent: event type slug=%s not found for host=%s", slug, username)
			return nil, ErrEventTypeNotFound
		}
		s.logger.Error("GetPublicEvent: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetPublicEvent - repository error: %v", ErrInternal, err)
	}

	questions, err := s.eventTypeRepo.GetQuestions(ctx, []int64{eventType.ID})
	if err != nil {
		s.logger.Error("GetPublicEvent: failed to get questions for event type id=%d: %v", eventType.ID, err)
		return nil, fmt.Errorf("%w: GetPublicEvent - repository error: %v", ErrInternal, err)
	}

	return &models.PublicEventResponse{
		User:      models.FromDomainPublicUser(user),
		EventType: models.FromDomainPublicEventType(eventType),
		Questions: models.FromDomainQuestions(questions[eventType.ID]),
	}, nil
}

func (s *Service) getByUsername(ctx context.Context, op, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: host username=%s not found", op, username)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for username=%s: %v", op, username, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}
