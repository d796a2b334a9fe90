package repository

import (
	"context"
	"strconv"
	"strings"

	"meca-api/core/database"
	"meca-api/core/logger"
	"meca-api/core/params"
	"meca-api/modules/notification/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByUserID(ctx context.Context, userID profileEntity.ProfileID, params params.QueryParams) (*entity.PaginatedNotificationEntity, error)
	ListByHostingRequest(ctx context.Context, userID profileEntity.ProfileID, requestID uuid.UUID) ([]entity.Notification, error)
	MarkAsRead(ctx context.Context, userID profileEntity.ProfileID, ids []string) error
	MarkHostingRequestRead(ctx context.Context, userID profileEntity.ProfileID, requestID uuid.UUID) (int64, error)
	MarkAllAsRead(ctx context.Context, userID profileEntity.ProfileID) error
	CountUnread(ctx context.Context, userID profileEntity.ProfileID) (int, error)
}

type NotificationRepository struct {
	db database.Database
}

func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = `id, user_id, title, message, type, link, data, is_read, created_at, updated_at`

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (title, message, type, link, data, user_id, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.GetContext(ctx, &notification.ID, query,
		notification.Title, notification.Message, notification.Type, notification.Link, notification.Data,
		notification.UserID, notification.IsRead, notification.CreatedAt, notification.UpdatedAt)
	if err != nil {
		logger.Error("NotificationRepository:Create", "user_id", notification.UserID, "error", err)
		return err
	}
	return nil
}

// userFilter builds the WHERE clause for a user's inbox. Status "unread" and
// "read" narrow by read state; anything else lists everything.
func userFilter(userID profileEntity.ProfileID, p params.QueryParams) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	switch p.Status {
	case "unread":
		conds = append(conds, "is_read = false")
	case "read":
		conds = append(conds, "is_read = true")
	}
	if p.Search != "" {
		args = append(args, "%"+p.Search+"%")
		n := strconv.Itoa(len(args))
		conds = append(conds, "(title ILIKE $"+n+" OR message ILIKE $"+n+")")
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID profileEntity.ProfileID, params params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	where, args := userFilter(userID, params)

	var totalItems int
	if err := r.db.GetContext(ctx, &totalItems, `SELECT COUNT(*) FROM notifications`+where, args...); err != nil {
		logger.Error("NotificationRepository:GetByUserID:Count", "user_id", userID, "error", err)
		return nil, err
	}

	n := len(args)
	query := `SELECT ` + notificationColumns + ` FROM notifications` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)

	notifications := []entity.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, append(args, params.PageSize, params.Offset())...); err != nil {
		logger.Error("NotificationRepository:GetByUserID:Select", "user_id", userID, "error", err)
		return nil, err
	}

	return &entity.PaginatedNotificationEntity{
		Items:      notifications,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *NotificationRepository) ListByHostingRequest(ctx context.Context, userID profileEntity.ProfileID, requestID uuid.UUID) ([]entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE user_id = $1 AND data->>'` + entity.DataKeyHostingRequestID + `' = $2
		ORDER BY created_at ASC`

	notifications := []entity.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID, requestID.String()); err != nil {
		logger.Error("NotificationRepository:ListByHostingRequest", "user_id", userID, "request_id", requestID, "error", err)
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, userID profileEntity.ProfileID, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := r.db.In(`UPDATE notifications SET is_read = true, updated_at = now() WHERE user_id = ? AND id IN (?)`, userID, ids)
	if err != nil {
		return err
	}
	if err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.Error("NotificationRepository:MarkAsRead", "user_id", userID, "error", err)
		return err
	}
	return nil
}

// MarkHostingRequestRead clears every unread notification the user has about one request.
func (r *NotificationRepository) MarkHostingRequestRead(ctx context.Context, userID profileEntity.ProfileID, requestID uuid.UUID) (int64, error) {
	query := `UPDATE notifications SET is_read = true, updated_at = now()
		WHERE user_id = $1 AND is_read = false AND data->>'` + entity.DataKeyHostingRequestID + `' = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, userID, requestID.String())
	if err != nil {
		logger.Error("NotificationRepository:MarkHostingRequestRead", "user_id", userID, "request_id", requestID, "error", err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID profileEntity.ProfileID) error {
	query := `UPDATE notifications SET is_read = true, updated_at = now() WHERE user_id = $1 AND is_read = false`
	if err := r.db.ExecContext(ctx, query, userID); err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead", "user_id", userID, "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID profileEntity.ProfileID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		logger.Error("NotificationRepository:CountUnread", "user_id", userID, "error", err)
		return 0, err
	}
	return count, nil
}
