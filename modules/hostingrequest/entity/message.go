package entity

import (
	"time"

	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

// RequestMessage is immutable once stored.
type RequestMessage struct {
	ID            uuid.UUID               `db:"id" json:"id"`
	RequestID     uuid.UUID               `db:"request_id" json:"request_id"`
	SenderID      profileEntity.ProfileID `db:"sender_id" json:"sender_id"`
	SenderRole    SenderRole              `db:"sender_role" json:"sender_role"`
	Message       string                  `db:"message" json:"message"`
	IsPrivate     bool                    `db:"is_private" json:"is_private"`
	RecipientType *RecipientType          `db:"recipient_type" json:"recipient_type,omitempty"`
	CreatedAt     time.Time               `db:"created_at" json:"created_at"`
}

// Recipients is who a new message notifies before admins are expanded.
type Recipients struct {
	Requestor     *profileEntity.ProfileID
	EventDirector *profileEntity.ProfileID
	Admins        bool
}

// MessageRecipients computes the notification fan-out for a message on req.
// The requestor is only reached by public messages; the event director and
// admin channels are internal and ignore isPrivate.
func MessageRecipients(req *HostingRequest, isPrivate bool, recipient *RecipientType) Recipients {
	var out Recipients
	if recipient == nil {
		return out
	}
	rt := *recipient
	if !isPrivate && rt.includes(RecipientRequestor) && req.UserID != nil {
		id := *req.UserID
		out.Requestor = &id
	}
	if rt.includes(RecipientEventDirector) && req.AssignedEventDirectorID != nil {
		id := *req.AssignedEventDirectorID
		out.EventDirector = &id
	}
	if rt.includes(RecipientAdmin) {
		out.Admins = true
	}
	return out
}

// VisibleMessages filters a thread for the viewer's role.
func VisibleMessages(messages []RequestMessage, viewer SenderRole) []RequestMessage {
	if viewer.SeesPrivateMessages() {
		return messages
	}
	visible := make([]RequestMessage, 0, len(messages))
	for _, m := range messages {
		if !m.IsPrivate {
			visible = append(visible, m)
		}
	}
	return visible
}
