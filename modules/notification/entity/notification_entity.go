package entity

import (
	"meca-api/core/entity"
	profileEntity "meca-api/modules/profile/entity"
)

type NotificationType string

const (
	NotificationTypeSystem  NotificationType = "system"
	NotificationTypeMessage NotificationType = "message"
	NotificationTypeAlert   NotificationType = "alert"
	NotificationTypeInfo    NotificationType = "info"
)

// Data keys shared by producers and the inbox queries.
const (
	DataKeyHostingRequestID = "hosting_request_id"
	DataKeyStatus           = "status"
)

type Notification struct {
	UserID  profileEntity.ProfileID `db:"user_id" json:"user_id"`
	Title   string                  `db:"title" json:"title"`
	Message string                  `db:"message" json:"message"`
	Type    NotificationType        `db:"type" json:"type"`
	Link    *string                 `db:"link" json:"link,omitempty"`
	Data    entity.JSONB            `db:"data" json:"data"`
	IsRead  bool                    `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
