package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"meca-api/core/cache"
	"meca-api/core/constants"
	"meca-api/core/database"
	"meca-api/core/errors"
	"meca-api/core/logger"
	"meca-api/core/params"
	"meca-api/core/storage"
	eventDto "meca-api/modules/event/dto"
	eventEntity "meca-api/modules/event/entity"
	"meca-api/modules/hostingrequest/dto"
	"meca-api/modules/hostingrequest/entity"
	"meca-api/modules/hostingrequest/mapper"
	"meca-api/modules/hostingrequest/repository"
	notificationDto "meca-api/modules/notification/dto"
	profileEntity "meca-api/modules/profile/entity"
	profileService "meca-api/modules/profile/service"

	"github.com/google/uuid"
)

type HostingRequestServiceInterface interface {
	List(ctx context.Context, params params.QueryParams) (*dto.HostingRequestListResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HostingRequest, *errors.AppError)
	ListByUser(ctx context.Context, userID profileEntity.ProfileID) ([]entity.HostingRequest, *errors.AppError)
	ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID, status *entity.RequestStatus) ([]entity.HostingRequest, *errors.AppError)
	Create(ctx context.Context, req *dto.CreateHostingRequestRequest) (*entity.HostingRequest, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHostingRequestRequest) (*entity.HostingRequest, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	Respond(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, req *dto.RespondRequest) (*entity.HostingRequest, *errors.AppError)
	GetStats(ctx context.Context) (*dto.HostingRequestStats, *errors.AppError)
	GetEventDirectorStats(ctx context.Context, directorID profileEntity.ProfileID) (*dto.EventDirectorStats, *errors.AppError)
	ListAvailableEventDirectors(ctx context.Context) ([]profileEntity.Profile, *errors.AppError)

	Assign(ctx context.Context, id uuid.UUID, directorID, adminID profileEntity.ProfileID, notes *string) (*entity.HostingRequest, *errors.AppError)
	Reassign(ctx context.Context, id uuid.UUID, directorID, adminID profileEntity.ProfileID, notes *string) (*entity.HostingRequest, *errors.AppError)
	RevokeAssignment(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, reason *string) (*entity.HostingRequest, *errors.AppError)

	AcceptAssignment(ctx context.Context, id uuid.UUID, registryID profileEntity.EventDirectorID, callerID profileEntity.ProfileID) (*entity.HostingRequest, *errors.AppError)
	RejectAssignment(ctx context.Context, id uuid.UUID, registryID profileEntity.EventDirectorID, callerID profileEntity.ProfileID, reason string) (*entity.HostingRequest, *errors.AppError)

	AddMessage(ctx context.Context, cmd *dto.AddMessageCommand) (*entity.RequestMessage, *errors.AppError)
	GetMessages(ctx context.Context, id uuid.UUID, viewer entity.SenderRole) ([]entity.RequestMessage, *errors.AppError)
	RequestFurtherInfo(ctx context.Context, id uuid.UUID, senderID profileEntity.ProfileID, senderRole entity.SenderRole, text string) (*entity.HostingRequest, *errors.AppError)

	SetFinalApproval(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, final entity.FinalStatus, reason *string) (*entity.HostingRequest, *errors.AppError)
	CreateEventFromRequest(ctx context.Context, id uuid.UUID) (*eventEntity.Event, *errors.AppError)
	RequestorRespond(ctx context.Context, id uuid.UUID, requestorID profileEntity.ProfileID, text string) (*entity.HostingRequest, *errors.AppError)
}

// Notifier delivers in-app notifications.
type Notifier interface {
	Create(ctx context.Context, req *notificationDto.CreateNotificationRequest) error
}

// EventCreator creates events, joining the caller's transaction.
type EventCreator interface {
	Create(ctx context.Context, draft *eventDto.EventDraft) (*eventEntity.Event, *errors.AppError)
}

type Dependencies struct {
	Repo     repository.HostingRequestRepositoryInterface
	Messages repository.MessageRepositoryInterface
	Tx       database.Transactor
	Profiles profileService.ProfileServiceInterface
	Events   EventCreator
	Notifier Notifier
	Cache    cache.Cache
	Archiver storage.Archiver
	StatsTTL time.Duration
	Now      func() time.Time
}

type HostingRequestService struct {
	repo     repository.HostingRequestRepositoryInterface
	messages repository.MessageRepositoryInterface
	tx       database.Transactor
	profiles profileService.ProfileServiceInterface
	events   EventCreator
	notifier Notifier
	cache    cache.Cache
	archiver storage.Archiver
	statsTTL time.Duration
	now      func() time.Time
}

func NewHostingRequestService(deps Dependencies) *HostingRequestService {
	s := &HostingRequestService{
		repo:     deps.Repo,
		messages: deps.Messages,
		tx:       deps.Tx,
		profiles: deps.Profiles,
		events:   deps.Events,
		notifier: deps.Notifier,
		cache:    deps.Cache,
		archiver: deps.Archiver,
		statsTTL: deps.StatsTTL,
		now:      deps.Now,
	}
	if s.archiver == nil {
		s.archiver = storage.NopArchiver{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	switch {
	case s.statsTTL <= 0:
		s.statsTTL = constants.StatsCacheTTL
	case s.statsTTL > constants.StatsCacheMaxTTL:
		s.statsTTL = constants.StatsCacheMaxTTL
	}
	return s
}

func notFound(id uuid.UUID) *errors.AppError {
	return errors.NewAppError(errors.ErrNotFound, fmt.Sprintf("Event hosting request with ID %s not found", id), nil)
}

// transitionError maps workflow and storage errors onto error codes.
func transitionError(err error) *errors.AppError {
	switch {
	case stdErrors.Is(err, repository.ErrVersionConflict),
		stdErrors.Is(err, entity.ErrEventAlreadyCreated):
		return errors.NewAppError(errors.ErrConflict, err.Error(), err)
	case stdErrors.Is(err, entity.ErrNothingAssigned),
		stdErrors.Is(err, entity.ErrNotAssignedDirector),
		stdErrors.Is(err, entity.ErrAlreadyResponded),
		stdErrors.Is(err, entity.ErrReasonRequired),
		stdErrors.Is(err, entity.ErrNotAwaitingResponse),
		stdErrors.Is(err, entity.ErrNotRequestOwner),
		stdErrors.Is(err, entity.ErrRequestClosed),
		stdErrors.Is(err, entity.ErrNotApproved),
		stdErrors.Is(err, entity.ErrInvalidStatus),
		stdErrors.Is(err, entity.ErrInvalidFinalStatus),
		stdErrors.Is(err, entity.ErrMessageRequired),
		stdErrors.Is(err, entity.ErrSenderCannotAskInfo):
		return errors.NewAppError(errors.ErrInvalidState, err.Error(), err)
	}
	return errors.NewAppError(errors.ErrUpdateFailed, "update hosting request failed", err)
}

func toAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}
	return transitionError(err)
}

// mutation is applied to a locked copy of the request inside the transaction.
type mutation func(ctx context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError)

// mutate loads id under a row lock, applies fn and saves the result in one
// transaction. It returns the request as it was before and after.
func (s *HostingRequestService) mutate(ctx context.Context, id uuid.UUID, fn mutation) (*entity.HostingRequest, *entity.HostingRequest, *errors.AppError) {
	var before, after *entity.HostingRequest
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "get hosting request failed", err)
		}
		if current == nil {
			return notFound(id)
		}

		next, appErr := fn(ctx, *current)
		if appErr != nil {
			return appErr
		}

		saved, err := s.repo.Update(ctx, &next)
		if err != nil {
			return transitionError(err)
		}
		before, after = current, saved
		return nil
	})
	if err != nil {
		return nil, nil, toAppError(err)
	}
	return before, after, nil
}

func (s *HostingRequestService) List(ctx context.Context, queryParams params.QueryParams) (*dto.HostingRequestListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	queryParams.Normalize()
	page, err := s.repo.Search(ctx, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list hosting requests failed", err)
	}

	return &dto.HostingRequestListResponse{
		Data:  page.Items,
		Total: page.TotalItems,
		Page:  page.PageNumber,
		Limit: page.PageSize,
	}, nil
}

func (s *HostingRequestService) GetByID(ctx context.Context, id uuid.UUID) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get hosting request failed", err)
	}
	if req == nil {
		return nil, notFound(id)
	}
	return req, nil
}

func (s *HostingRequestService) ListByUser(ctx context.Context, userID profileEntity.ProfileID) ([]entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list hosting requests failed", err)
	}
	return items, nil
}

func (s *HostingRequestService) ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID, status *entity.RequestStatus) ([]entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if status != nil && !status.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("invalid status %q", *status), nil)
	}
	items, err := s.repo.ListByEventDirector(ctx, directorID, status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list hosting requests failed", err)
	}
	return items, nil
}

func (s *HostingRequestService) Create(ctx context.Context, req *dto.CreateHostingRequestRequest) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	record, err := mapper.ToHostingRequestEntity(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create hosting request failed", err)
	}

	logger.Info("HostingRequestService:Create:Created", "id", created.ID, "event_name", created.EventName)
	s.invalidateStats(ctx)
	s.notifyAdmins(ctx, nil, "New Event Hosting Request",
		fmt.Sprintf("%s submitted a request to host \"%s\".", created.RequestorName(), created.EventName),
		created)
	return created, nil
}

// Update applies a sparse patch. It is optimistic: a concurrent write between
// read and save yields a conflict instead of being overwritten.
func (s *HostingRequestService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHostingRequestRequest) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get hosting request failed", err)
	}
	if current == nil {
		return nil, notFound(id)
	}

	next, err := mapper.ApplyUpdate(*current, req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, transitionError(err)
	}

	s.invalidateStats(ctx, current.AssignedEventDirectorID)
	return updated, nil
}

func (s *HostingRequestService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get hosting request failed", err)
	}
	if current == nil {
		return notFound(id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete hosting request failed", err)
	}
	if !deleted {
		return notFound(id)
	}

	logger.Info("HostingRequestService:Delete:Deleted", "id", id)
	s.invalidateStats(ctx, current.AssignedEventDirectorID)
	return nil
}

// Respond is the single-step admin reply that predates the assignment workflow.
func (s *HostingRequestService) Respond(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, req *dto.RespondRequest) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	_, updated, appErr := s.mutate(ctx, id, func(_ context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		next, err := entity.RespondAsAdmin(r, adminID, req.Response, entity.RequestStatus(req.Status), s.now())
		if err != nil {
			return r, transitionError(err)
		}
		return next, nil
	})
	if appErr != nil {
		return nil, appErr
	}

	s.invalidateStats(ctx, updated.AssignedEventDirectorID)
	if updated.UserID != nil {
		s.notify(ctx, *updated.UserID, "Response to Your Hosting Request",
			fmt.Sprintf("MECA has responded to your request to host \"%s\".", updated.EventName), updated)
	}
	return updated, nil
}

func (s *HostingRequestService) ListAvailableEventDirectors(ctx context.Context) ([]profileEntity.Profile, *errors.AppError) {
	return s.profiles.ListAvailableEventDirectors(ctx)
}
