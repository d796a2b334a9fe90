package repository

import (
	"context"

	"meca-api/core/database"
	"meca-api/core/logger"
	"meca-api/modules/hostingrequest/entity"

	"github.com/google/uuid"
)

type MessageRepositoryInterface interface {
	Create(ctx context.Context, msg *entity.RequestMessage) (*entity.RequestMessage, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID, includePrivate bool) ([]entity.RequestMessage, error)
}

type MessageRepository struct {
	DB database.Database
}

func NewMessageRepository(db database.Database) *MessageRepository {
	return &MessageRepository{DB: db}
}

const messageColumns = `id, request_id, sender_id, sender_role, message, is_private, recipient_type, created_at`

func (r *MessageRepository) Create(ctx context.Context, msg *entity.RequestMessage) (*entity.RequestMessage, error) {
	query := `
		INSERT INTO event_hosting_request_messages (request_id, sender_id, sender_role, message, is_private, recipient_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + messageColumns

	var created entity.RequestMessage
	err := r.DB.GetContext(ctx, &created, query,
		msg.RequestID, msg.SenderID, msg.SenderRole, msg.Message, msg.IsPrivate, msg.RecipientType)
	if err != nil {
		logger.Error("MessageRepository:Create", "request_id", msg.RequestID, "error", err)
		return nil, err
	}
	return &created, nil
}

// ListByRequest returns the thread oldest first.
func (r *MessageRepository) ListByRequest(ctx context.Context, requestID uuid.UUID, includePrivate bool) ([]entity.RequestMessage, error) {
	messages := []entity.RequestMessage{}
	query := `SELECT ` + messageColumns + ` FROM event_hosting_request_messages WHERE request_id = $1`
	if !includePrivate {
		query += ` AND is_private = FALSE`
	}
	query += ` ORDER BY created_at ASC`

	if err := r.DB.SelectContext(ctx, &messages, query, requestID); err != nil {
		logger.Error("MessageRepository:ListByRequest", "request_id", requestID, "error", err)
		return nil, err
	}
	return messages, nil
}
