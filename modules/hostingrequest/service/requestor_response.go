package service

import (
	"context"

	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

// RequestorRespond answers an open information request. The reply goes to
// everyone when a director is assigned, otherwise to admins.
func (s *HostingRequestService) RequestorRespond(ctx context.Context, id uuid.UUID, requestorID profileEntity.ProfileID, text string) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var msg *entity.RequestMessage
	_, updated, appErr := s.mutate(ctx, id, func(ctx context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		next, err := entity.AcceptRequestorReply(r, requestorID)
		if err != nil {
			return r, transitionError(err)
		}
		recipient := entity.ReplyRecipient(&next)
		created, appErr := s.appendMessage(ctx, &next, requestorID, entity.SenderRequestor, text, false, &recipient)
		if appErr != nil {
			return r, appErr
		}
		msg = created
		return next, nil
	})
	if appErr != nil {
		return nil, appErr
	}

	s.fanOut(ctx, updated, msg)
	return updated, nil
}
