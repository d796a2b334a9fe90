package service

import (
	"context"
	"fmt"
	"strings"

	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/modules/hostingrequest/dto"
	"meca-api/modules/hostingrequest/entity"
	notificationEntity "meca-api/modules/notification/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

var senderLabels = map[entity.SenderRole]string{
	entity.SenderRequestor:     "the requestor",
	entity.SenderEventDirector: "the event director",
	entity.SenderAdmin:         "MECA staff",
}

// appendMessage stores a message without notifying anyone.
func (s *HostingRequestService) appendMessage(ctx context.Context, r *entity.HostingRequest, senderID profileEntity.ProfileID, role entity.SenderRole, text string, isPrivate bool, recipient *entity.RecipientType) (*entity.RequestMessage, *errors.AppError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, transitionError(entity.ErrMessageRequired)
	}
	if !role.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("invalid sender role %q", role), nil)
	}
	if recipient != nil && !recipient.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("invalid recipient type %q", *recipient), nil)
	}

	created, err := s.messages.Create(ctx, &entity.RequestMessage{
		RequestID:     r.ID,
		SenderID:      senderID,
		SenderRole:    role,
		Message:       text,
		IsPrivate:     isPrivate,
		RecipientType: recipient,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create message failed", err)
	}
	return created, nil
}

// fanOut notifies the recipients of msg. Admins never get their own messages.
func (s *HostingRequestService) fanOut(ctx context.Context, r *entity.HostingRequest, msg *entity.RequestMessage) {
	recipients := entity.MessageRecipients(r, msg.IsPrivate, msg.RecipientType)
	title := "New Message on Hosting Request"
	body := fmt.Sprintf("New message from %s about \"%s\".", senderLabels[msg.SenderRole], r.EventName)
	link := requestLink(r) + "/messages"

	if recipients.Requestor != nil {
		s.send(ctx, *recipients.Requestor, title, body, notificationEntity.NotificationTypeMessage, link, r)
	}
	if recipients.EventDirector != nil {
		s.send(ctx, *recipients.EventDirector, title, body, notificationEntity.NotificationTypeMessage, link, r)
	}
	if recipients.Admins {
		sender := msg.SenderID
		s.sendAdmins(ctx, &sender, title, body, notificationEntity.NotificationTypeMessage, link, r)
	}
}

func (s *HostingRequestService) AddMessage(ctx context.Context, cmd *dto.AddMessageCommand) (*entity.RequestMessage, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	r, appErr := s.GetByID(ctx, cmd.RequestID)
	if appErr != nil {
		return nil, appErr
	}

	msg, appErr := s.appendMessage(ctx, r, cmd.SenderID, cmd.SenderRole, cmd.Message, cmd.IsPrivate, cmd.RecipientType)
	if appErr != nil {
		return nil, appErr
	}

	s.fanOut(ctx, r, msg)
	return msg, nil
}

// GetMessages returns the thread oldest first; requestors never see private messages.
func (s *HostingRequestService) GetMessages(ctx context.Context, id uuid.UUID, viewer entity.SenderRole) ([]entity.RequestMessage, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if !viewer.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("invalid viewer role %q", viewer), nil)
	}
	if _, appErr := s.GetByID(ctx, id); appErr != nil {
		return nil, appErr
	}

	messages, err := s.messages.ListByRequest(ctx, id, viewer.SeesPrivateMessages())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list messages failed", err)
	}
	return entity.VisibleMessages(messages, viewer), nil
}

// RequestFurtherInfo pauses the request until the requestor replies and posts
// the question to them.
func (s *HostingRequestService) RequestFurtherInfo(ctx context.Context, id uuid.UUID, senderID profileEntity.ProfileID, senderRole entity.SenderRole, text string) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var msg *entity.RequestMessage
	_, updated, appErr := s.mutate(ctx, id, func(ctx context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		switch senderRole {
		case entity.SenderAdmin:
		case entity.SenderEventDirector:
			if r.AssignedEventDirectorID == nil || *r.AssignedEventDirectorID != senderID {
				return r, transitionError(entity.ErrSenderCannotAskInfo)
			}
		case entity.SenderRequestor:
			return r, transitionError(entity.ErrSenderCannotAskInfo)
		default:
			return r, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("invalid sender role %q", senderRole), nil)
		}

		next, err := entity.RequestInfo(r)
		if err != nil {
			return r, transitionError(err)
		}

		recipient := entity.RecipientRequestor
		created, appErr := s.appendMessage(ctx, &next, senderID, senderRole, text, false, &recipient)
		if appErr != nil {
			return r, appErr
		}
		msg = created
		return next, nil
	})
	if appErr != nil {
		return nil, appErr
	}

	s.invalidateStats(ctx, updated.AssignedEventDirectorID)
	s.fanOut(ctx, updated, msg)
	return updated, nil
}
