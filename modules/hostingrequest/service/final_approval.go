package service

import (
	"context"
	"fmt"

	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/core/logger"
	eventEntity "meca-api/modules/event/entity"
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

func finalDecisionNotice(final entity.FinalStatus, eventName string) (string, string) {
	switch final {
	case entity.FinalApproved:
		return "Hosting Request Approved",
			fmt.Sprintf("Your request to host \"%s\" has been approved.", eventName)
	case entity.FinalApprovedPendingInfo:
		return "Hosting Request Approved: Information Needed",
			fmt.Sprintf("Your request to host \"%s\" has been approved, but we need more information from you.", eventName)
	case entity.FinalRejected:
		return "Hosting Request Not Approved",
			fmt.Sprintf("Your request to host \"%s\" was not approved.", eventName)
	case entity.FinalPendingInfo:
		return "Additional Information Needed",
			fmt.Sprintf("We need more information before we can decide on your request to host \"%s\".", eventName)
	}
	return "Hosting Request Updated", fmt.Sprintf("Your request to host \"%s\" has been updated.", eventName)
}

// SetFinalApproval records the admin's decision. Both approved outcomes create
// the event in the same transaction unless one already exists.
func (s *HostingRequestService) SetFinalApproval(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, final entity.FinalStatus, reason *string) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var event *eventEntity.Event
	_, updated, appErr := s.mutate(ctx, id, func(ctx context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		next, outcome, err := entity.ApplyFinalDecision(r, adminID, final, reason, s.now())
		if err != nil {
			return r, transitionError(err)
		}
		if !outcome.Materialize {
			return next, nil
		}
		if next.CreatedEventID != nil {
			logger.Info("HostingRequestService:SetFinalApproval:EventExists", "id", id, "event_id", *next.CreatedEventID)
			return next, nil
		}
		linked, created, appErr := s.materialize(ctx, next)
		if appErr != nil {
			return r, appErr
		}
		event = created
		return linked, nil
	})
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("HostingRequestService:SetFinalApproval:Decided", "id", id, "final_status", final, "admin_id", adminID)
	if updated.UserID != nil {
		title, message := finalDecisionNotice(final, updated.EventName)
		s.notify(ctx, *updated.UserID, title, withReason(message, reason), updated)
	}
	if event != nil {
		s.announceEvent(ctx, updated, event)
	}
	s.invalidateStats(ctx, updated.AssignedEventDirectorID)
	s.archiveDecision(ctx, updated)
	return updated, nil
}
