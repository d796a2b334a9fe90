package controller

import (
	"context"

	"meca-api/core/errors"
	"meca-api/core/params"
	eventEntity "meca-api/modules/event/entity"
	"meca-api/modules/hostingrequest/dto"
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type serviceMock struct {
	mock.Mock
}

func appErrAt(args mock.Arguments, i int) *errors.AppError {
	appErr, _ := args.Get(i).(*errors.AppError)
	return appErr
}

func requestAt(args mock.Arguments) (*entity.HostingRequest, *errors.AppError) {
	r, _ := args.Get(0).(*entity.HostingRequest)
	return r, appErrAt(args, 1)
}

func requestsAt(args mock.Arguments) ([]entity.HostingRequest, *errors.AppError) {
	items, _ := args.Get(0).([]entity.HostingRequest)
	return items, appErrAt(args, 1)
}

func (m *serviceMock) List(ctx context.Context, p params.QueryParams) (*dto.HostingRequestListResponse, *errors.AppError) {
	args := m.Called(ctx, p)
	res, _ := args.Get(0).(*dto.HostingRequestListResponse)
	return res, appErrAt(args, 1)
}

func (m *serviceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id))
}

func (m *serviceMock) ListByUser(ctx context.Context, userID profileEntity.ProfileID) ([]entity.HostingRequest, *errors.AppError) {
	return requestsAt(m.Called(ctx, userID))
}

func (m *serviceMock) ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID, status *entity.RequestStatus) ([]entity.HostingRequest, *errors.AppError) {
	return requestsAt(m.Called(ctx, directorID, status))
}

func (m *serviceMock) Create(ctx context.Context, req *dto.CreateHostingRequestRequest) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, req))
}

func (m *serviceMock) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHostingRequestRequest) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, req))
}

func (m *serviceMock) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	return appErrAt(m.Called(ctx, id), 0)
}

func (m *serviceMock) Respond(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, req *dto.RespondRequest) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, adminID, req))
}

func (m *serviceMock) GetStats(ctx context.Context) (*dto.HostingRequestStats, *errors.AppError) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*dto.HostingRequestStats)
	return stats, appErrAt(args, 1)
}

func (m *serviceMock) GetEventDirectorStats(ctx context.Context, directorID profileEntity.ProfileID) (*dto.EventDirectorStats, *errors.AppError) {
	args := m.Called(ctx, directorID)
	stats, _ := args.Get(0).(*dto.EventDirectorStats)
	return stats, appErrAt(args, 1)
}

func (m *serviceMock) ListAvailableEventDirectors(ctx context.Context) ([]profileEntity.Profile, *errors.AppError) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]profileEntity.Profile)
	return profiles, appErrAt(args, 1)
}

func (m *serviceMock) Assign(ctx context.Context, id uuid.UUID, directorID, adminID profileEntity.ProfileID, notes *string) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, directorID, adminID, notes))
}

func (m *serviceMock) Reassign(ctx context.Context, id uuid.UUID, directorID, adminID profileEntity.ProfileID, notes *string) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, directorID, adminID, notes))
}

func (m *serviceMock) RevokeAssignment(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, reason *string) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, adminID, reason))
}

func (m *serviceMock) AcceptAssignment(ctx context.Context, id uuid.UUID, registryID profileEntity.EventDirectorID, callerID profileEntity.ProfileID) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, registryID, callerID))
}

func (m *serviceMock) RejectAssignment(ctx context.Context, id uuid.UUID, registryID profileEntity.EventDirectorID, callerID profileEntity.ProfileID, reason string) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, registryID, callerID, reason))
}

func (m *serviceMock) AddMessage(ctx context.Context, cmd *dto.AddMessageCommand) (*entity.RequestMessage, *errors.AppError) {
	args := m.Called(ctx, cmd)
	msg, _ := args.Get(0).(*entity.RequestMessage)
	return msg, appErrAt(args, 1)
}

func (m *serviceMock) GetMessages(ctx context.Context, id uuid.UUID, viewer entity.SenderRole) ([]entity.RequestMessage, *errors.AppError) {
	args := m.Called(ctx, id, viewer)
	msgs, _ := args.Get(0).([]entity.RequestMessage)
	return msgs, appErrAt(args, 1)
}

func (m *serviceMock) RequestFurtherInfo(ctx context.Context, id uuid.UUID, senderID profileEntity.ProfileID, senderRole entity.SenderRole, text string) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, senderID, senderRole, text))
}

func (m *serviceMock) SetFinalApproval(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, final entity.FinalStatus, reason *string) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, adminID, final, reason))
}

func (m *serviceMock) CreateEventFromRequest(ctx context.Context, id uuid.UUID) (*eventEntity.Event, *errors.AppError) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*eventEntity.Event)
	return event, appErrAt(args, 1)
}

func (m *serviceMock) RequestorRespond(ctx context.Context, id uuid.UUID, requestorID profileEntity.ProfileID, text string) (*entity.HostingRequest, *errors.AppError) {
	return requestAt(m.Called(ctx, id, requestorID, text))
}
