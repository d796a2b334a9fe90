package service

import (
	"context"
	"fmt"

	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/core/logger"
	"meca-api/core/utils"
	"meca-api/modules/event/dto"
	"meca-api/modules/event/entity"
	"meca-api/modules/event/mapper"
	"meca-api/modules/event/repository"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventServiceInterface interface {
	Create(ctx context.Context, draft *dto.EventDraft) (*entity.Event, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID) ([]dto.EventResponse, *errors.AppError)
}

type EventService struct {
	repo repository.EventRepositoryInterface
}

func NewEventService(repo repository.EventRepositoryInterface) *EventService {
	return &EventService{repo: repo}
}

// Create inserts the event. It runs inside the caller's transaction when there is one.
func (s *EventService) Create(ctx context.Context, draft *dto.EventDraft) (*entity.Event, *errors.AppError) {
	if draft.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "event title is required", nil)
	}

	event := mapper.ToEventEntity(draft, buildSlug(draft.Title))
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create event failed", err)
	}

	logger.Info("EventService:Create:Created", "event_id", created.ID, "slug", created.Slug)
	return created, nil
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, fmt.Sprintf("Event with ID %s not found", id), nil)
	}
	return mapper.ToEventResponse(event), nil
}

func (s *EventService) ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID) ([]dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	events, err := s.repo.ListByEventDirector(ctx, directorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list events failed", err)
	}
	return mapper.ToEventResponses(events), nil
}

// buildSlug appends a short random suffix; titles repeat across seasons.
func buildSlug(title string) string {
	base := slug.Make(title)
	if base == "" {
		base = "event"
	}
	return base + "-" + utils.GenerateID()
}
