package dto

import (
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

type RespondRequest struct {
	Response string `json:"response" validate:"required"`
	Status   string `json:"status" validate:"required,request_status"`
}

type AssignRequest struct {
	EventDirectorID profileEntity.ProfileID `json:"event_director_id" validate:"required"`
	Notes           *string                 `json:"notes"`
}

type ReassignRequest struct {
	NewEventDirectorID profileEntity.ProfileID `json:"new_event_director_id" validate:"required"`
	Notes              *string                 `json:"notes"`
}

type RevokeAssignmentRequest struct {
	Reason *string `json:"reason"`
}

// EDAcceptRequest carries the caller's event director registry id, not a profile id.
type EDAcceptRequest struct {
	EventDirectorID profileEntity.EventDirectorID `json:"event_director_id" validate:"required"`
}

type EDRejectRequest struct {
	EventDirectorID profileEntity.EventDirectorID `json:"event_director_id" validate:"required"`
	Reason          string                        `json:"reason" validate:"required"`
}

type AddMessageRequest struct {
	SenderRole    string  `json:"sender_role" validate:"required,sender_role"`
	Message       string  `json:"message" validate:"required"`
	IsPrivate     bool    `json:"is_private"`
	RecipientType *string `json:"recipient_type" validate:"omitempty,recipient_type"`
}

type FinalApprovalRequest struct {
	FinalStatus string  `json:"final_status" validate:"required,final_status"`
	Reason      *string `json:"reason"`
}

type RequestInfoRequest struct {
	SenderRole string `json:"sender_role" validate:"required,sender_role"`
	Message    string `json:"message" validate:"required"`
}

type RequestorRespondRequest struct {
	Message string `json:"message" validate:"required"`
}

// AddMessageCommand is the service-level form of a new message.
type AddMessageCommand struct {
	RequestID     uuid.UUID
	SenderID      profileEntity.ProfileID
	SenderRole    entity.SenderRole
	Message       string
	IsPrivate     bool
	RecipientType *entity.RecipientType
}
