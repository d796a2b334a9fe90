package service

import (
	"context"
	"encoding/json"
	"testing"

	"meca-api/core/constants"
	coreEntity "meca-api/core/entity"
	"meca-api/core/params"
	"meca-api/modules/notification/dto"
	"meca-api/modules/notification/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	stored   []*entity.Notification
	markedBy profileEntity.ProfileID
	marked   []string
	unread   int
}

func (r *fakeRepo) Create(_ context.Context, n *entity.Notification) error {
	n.ID = uuid.New()
	r.stored = append(r.stored, n)
	return nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID profileEntity.ProfileID, p params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	var items []entity.Notification
	for _, n := range r.stored {
		if n.UserID == userID {
			items = append(items, *n)
		}
	}
	return &entity.PaginatedNotificationEntity{
		Items:      items,
		TotalItems: len(items),
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *fakeRepo) ListByHostingRequest(_ context.Context, userID profileEntity.ProfileID, requestID uuid.UUID) ([]entity.Notification, error) {
	var items []entity.Notification
	for _, n := range r.stored {
		if n.UserID == userID && n.Data[entity.DataKeyHostingRequestID] == requestID.String() {
			items = append(items, *n)
		}
	}
	return items, nil
}

func (r *fakeRepo) MarkHostingRequestRead(_ context.Context, userID profileEntity.ProfileID, requestID uuid.UUID) (int64, error) {
	var n int64
	for _, item := range r.stored {
		if item.UserID == userID && !item.IsRead && item.Data[entity.DataKeyHostingRequestID] == requestID.String() {
			item.IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) MarkAsRead(_ context.Context, userID profileEntity.ProfileID, ids []string) error {
	r.markedBy = userID
	r.marked = ids
	return nil
}

func (r *fakeRepo) MarkAllAsRead(_ context.Context, userID profileEntity.ProfileID) error {
	r.markedBy = userID
	return nil
}

func (r *fakeRepo) CountUnread(_ context.Context, _ profileEntity.ProfileID) (int, error) {
	return r.unread, nil
}

type fakeQueue struct {
	taskType string
	payload  any
	opts     []asynq.Option
}

func (q *fakeQueue) Enqueue(_ context.Context, taskType string, payload any, opts ...asynq.Option) error {
	q.taskType = taskType
	q.payload = payload
	q.opts = opts
	return nil
}

func newRequest(userID profileEntity.ProfileID) *dto.CreateNotificationRequest {
	return &dto.CreateNotificationRequest{
		UserID:  userID,
		Title:   "New Hosting Request",
		Message: "Spring Sound Off needs review",
		Link:    "/hosting-requests/123",
		Data:    map[string]any{"request_id": "123"},
	}
}

func TestCreate_StoresInlineWithoutQueue(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, nil)
	user := profileEntity.ProfileID(uuid.New())

	require.NoError(t, svc.Create(context.Background(), newRequest(user)))

	require.Len(t, repo.stored, 1)
	n := repo.stored[0]
	assert.Equal(t, user, n.UserID)
	assert.Equal(t, entity.NotificationTypeSystem, n.Type)
	assert.False(t, n.IsRead)
	require.NotNil(t, n.Link)
	assert.Equal(t, "/hosting-requests/123", *n.Link)
	assert.Equal(t, coreEntity.JSONB{"request_id": "123"}, n.Data)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestCreate_KeepsTypeAndOmitsEmptyLink(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, nil)

	req := newRequest(profileEntity.ProfileID(uuid.New()))
	req.Type = entity.NotificationTypeMessage
	req.Link = ""
	require.NoError(t, svc.Create(context.Background(), req))

	require.Len(t, repo.stored, 1)
	assert.Equal(t, entity.NotificationTypeMessage, repo.stored[0].Type)
	assert.Nil(t, repo.stored[0].Link)
}

func TestCreate_EnqueuesWhenQueueConfigured(t *testing.T) {
	repo := &fakeRepo{}
	q := &fakeQueue{}
	svc := NewNotificationService(repo, q)

	req := newRequest(profileEntity.ProfileID(uuid.New()))
	require.NoError(t, svc.Create(context.Background(), req))

	assert.Empty(t, repo.stored)
	assert.Equal(t, constants.TaskNotificationCreate, q.taskType)
	assert.Same(t, req, q.payload)
	assert.Len(t, q.opts, 1)
}

func TestCreate_RejectsMissingRecipient(t *testing.T) {
	repo := &fakeRepo{}
	q := &fakeQueue{}
	svc := NewNotificationService(repo, q)

	err := svc.Create(context.Background(), newRequest(profileEntity.ProfileID{}))
	require.Error(t, err)
	assert.Empty(t, q.taskType)
	assert.Empty(t, repo.stored)
}

func TestHandleCreateTask(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, nil)
	user := profileEntity.ProfileID(uuid.New())

	raw, err := json.Marshal(newRequest(user))
	require.NoError(t, err)

	require.NoError(t, svc.HandleCreateTask(context.Background(), asynq.NewTask(constants.TaskNotificationCreate, raw)))
	require.Len(t, repo.stored, 1)
	assert.Equal(t, user, repo.stored[0].UserID)
	assert.Equal(t, "Spring Sound Off needs review", repo.stored[0].Message)
}

func TestHandleCreateTask_BadPayloadSkipsRetry(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, nil)

	err := svc.HandleCreateTask(context.Background(), asynq.NewTask(constants.TaskNotificationCreate, []byte("{")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, repo.stored)
}

func TestGetMyNotifications(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, nil)
	me := profileEntity.ProfileID(uuid.New())
	other := profileEntity.ProfileID(uuid.New())

	require.NoError(t, svc.Create(context.Background(), newRequest(me)))
	require.NoError(t, svc.Create(context.Background(), newRequest(other)))

	page, err := svc.GetMyNotifications(context.Background(), me, params.QueryParams{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "New Hosting Request", page.Items[0].Title)
	assert.Equal(t, "system", page.Items[0].Type)
	assert.Equal(t, 1, page.TotalItems)
}

func TestReadState(t *testing.T) {
	repo := &fakeRepo{unread: 4}
	svc := NewNotificationService(repo, nil)
	me := profileEntity.ProfileID(uuid.New())

	count, err := svc.CountUnread(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	ids := []string{uuid.NewString()}
	require.NoError(t, svc.MarkAsRead(context.Background(), me, ids))
	assert.Equal(t, me, repo.markedBy)
	assert.Equal(t, ids, repo.marked)

	repo.markedBy = profileEntity.ProfileID{}
	require.NoError(t, svc.MarkAllAsRead(context.Background(), me))
	assert.Equal(t, me, repo.markedBy)
}

func TestHostingRequestNotifications(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewNotificationService(repo, nil)
	me := profileEntity.ProfileID(uuid.New())
	requestID := uuid.New()
	otherRequest := uuid.New()

	for _, id := range []uuid.UUID{requestID, requestID, otherRequest} {
		req := newRequest(me)
		req.Data = map[string]any{entity.DataKeyHostingRequestID: id.String()}
		require.NoError(t, svc.Create(context.Background(), req))
	}

	items, err := svc.GetForHostingRequest(context.Background(), me, requestID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	updated, err := svc.MarkHostingRequestRead(context.Background(), me, requestID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	updated, err = svc.MarkHostingRequestRead(context.Background(), me, requestID)
	require.NoError(t, err)
	assert.Zero(t, updated)

	items, err = svc.GetForHostingRequest(context.Background(), profileEntity.ProfileID(uuid.New()), requestID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
