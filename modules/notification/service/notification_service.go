package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meca-api/core/constants"
	coreDto "meca-api/core/dto"
	coreEntity "meca-api/core/entity"
	"meca-api/core/logger"
	"meca-api/core/params"
	"meca-api/core/queue"
	"meca-api/modules/notification/dto"
	"meca-api/modules/notification/entity"
	"meca-api/modules/notification/repository"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type NotificationService struct {
	repo  repository.NotificationRepositoryInterface
	queue queue.Enqueuer
}

// NewNotificationService stores notifications inline when q is nil.
func NewNotificationService(repo repository.NotificationRepositoryInterface, q queue.Enqueuer) *NotificationService {
	return &NotificationService{repo: repo, queue: q}
}

// Create hands the notification to the worker queue, or stores it directly when no queue is configured.
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	if req.UserID.IsZero() {
		return fmt.Errorf("notification has no recipient")
	}
	if s.queue != nil {
		return s.queue.Enqueue(ctx, constants.TaskNotificationCreate, req, asynq.MaxRetry(3))
	}
	return s.store(ctx, req)
}

// HandleCreateTask is the asynq handler for notification:create.
func (s *NotificationService) HandleCreateTask(ctx context.Context, task *asynq.Task) error {
	var req dto.CreateNotificationRequest
	if err := json.Unmarshal(task.Payload(), &req); err != nil {
		logger.Error("NotificationService:HandleCreateTask:Unmarshal", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	return s.store(ctx, &req)
}

func (s *NotificationService) store(ctx context.Context, req *dto.CreateNotificationRequest) error {
	now := time.Now()
	notif := &entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Data:    coreEntity.JSONB(req.Data),
		IsRead:  false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if notif.Type == "" {
		notif.Type = entity.NotificationTypeSystem
	}
	if req.Link != "" {
		link := req.Link
		notif.Link = &link
	}
	return s.repo.Create(ctx, notif)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID profileEntity.ProfileID, queryParams params.QueryParams) (*coreDto.Pagination[dto.NotificationResponse], error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	page, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, err
	}
	return coreDto.MapPagination(page, toNotificationResponse), nil
}

// GetForHostingRequest lists what the user was told about one request, oldest first.
func (s *NotificationService) GetForHostingRequest(ctx context.Context, userID profileEntity.ProfileID, requestID uuid.UUID) ([]dto.NotificationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.ListByHostingRequest(ctx, userID, requestID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(items))
	for i := range items {
		out = append(out, toNotificationResponse(&items[i]))
	}
	return out, nil
}

// MarkHostingRequestRead returns how many notifications changed state.
func (s *NotificationService) MarkHostingRequestRead(ctx context.Context, userID profileEntity.ProfileID, requestID uuid.UUID) (int64, error) {
	n, err := s.repo.MarkHostingRequestRead(ctx, userID, requestID)
	if err != nil {
		return 0, err
	}
	logger.Debug("NotificationService:MarkHostingRequestRead", "user_id", userID, "request_id", requestID, "updated", n)
	return n, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID profileEntity.ProfileID, ids []string) error {
	return s.repo.MarkAsRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID profileEntity.ProfileID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID profileEntity.ProfileID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Link:      n.Link,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
