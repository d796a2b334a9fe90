package dto

import (
	"time"

	"meca-api/modules/notification/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Link      *string        `json:"link,omitempty"`
	Data      map[string]any `json:"data"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}

type MarkAsReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// CreateNotificationRequest is also the asynq task payload.
type CreateNotificationRequest struct {
	UserID  profileEntity.ProfileID `json:"user_id"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Type    entity.NotificationType `json:"type"`
	Link    string                  `json:"link,omitempty"`
	Data    map[string]any          `json:"data,omitempty"`
}
