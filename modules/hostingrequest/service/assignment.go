package service

import (
	"context"
	"fmt"

	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/core/logger"
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

// checkDirector verifies the target profile exists and may direct events.
func (s *HostingRequestService) checkDirector(ctx context.Context, directorID profileEntity.ProfileID) *errors.AppError {
	profile, appErr := s.profiles.GetByID(ctx, directorID)
	if appErr != nil {
		return appErr
	}
	if !profile.Role.CanDirectEvents() {
		return errors.NewAppError(errors.ErrInvalidState,
			fmt.Sprintf("Profile %s cannot be assigned as event director (role %s)", directorID, profile.Role), nil)
	}
	return nil
}

func (s *HostingRequestService) Assign(ctx context.Context, id uuid.UUID, directorID, adminID profileEntity.ProfileID, notes *string) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.checkDirector(ctx, directorID); appErr != nil {
		return nil, appErr
	}

	before, updated, appErr := s.mutate(ctx, id, func(_ context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		return entity.AssignDirector(r, directorID, notes, s.now()), nil
	})
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("HostingRequestService:Assign:Assigned", "id", id, "event_director_id", directorID, "admin_id", adminID)
	s.invalidateStats(ctx, before.AssignedEventDirectorID, updated.AssignedEventDirectorID)
	s.notify(ctx, directorID, "New Hosting Request Assignment",
		fmt.Sprintf("You have been assigned to review the request to host \"%s\".", updated.EventName), updated)
	return updated, nil
}

// Reassign moves the request to another director and restarts their review.
func (s *HostingRequestService) Reassign(ctx context.Context, id uuid.UUID, directorID, adminID profileEntity.ProfileID, notes *string) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.checkDirector(ctx, directorID); appErr != nil {
		return nil, appErr
	}

	before, updated, appErr := s.mutate(ctx, id, func(_ context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		return entity.ReassignDirector(r, directorID, notes, s.now()), nil
	})
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("HostingRequestService:Reassign:Reassigned", "id", id, "event_director_id", directorID, "admin_id", adminID)
	s.invalidateStats(ctx, before.AssignedEventDirectorID, updated.AssignedEventDirectorID)
	s.notify(ctx, directorID, "New Hosting Request Assignment",
		fmt.Sprintf("You have been assigned to review the request to host \"%s\".", updated.EventName), updated)
	return updated, nil
}

// RevokeAssignment clears the assignment. A reason is kept as a private note
// addressed to the event director.
func (s *HostingRequestService) RevokeAssignment(ctx context.Context, id uuid.UUID, adminID profileEntity.ProfileID, reason *string) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	before, updated, appErr := s.mutate(ctx, id, func(ctx context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		next, err := entity.RevokeAssignment(r)
		if err != nil {
			return r, transitionError(err)
		}
		if reason != nil && *reason != "" {
			recipient := entity.RecipientEventDirector
			_, appErr := s.appendMessage(ctx, &next, adminID, entity.SenderAdmin,
				"Assignment revoked: "+*reason, true, &recipient)
			if appErr != nil {
				return r, appErr
			}
		}
		return next, nil
	})
	if appErr != nil {
		return nil, appErr
	}

	formerID := *before.AssignedEventDirectorID
	logger.Info("HostingRequestService:RevokeAssignment:Revoked", "id", id, "former_event_director_id", formerID, "admin_id", adminID)
	s.invalidateStats(ctx, before.AssignedEventDirectorID)
	s.notify(ctx, formerID, "Hosting Request Assignment Revoked",
		withReason(fmt.Sprintf("Your assignment to the request to host \"%s\" has been revoked.", updated.EventName), reason),
		updated)
	return updated, nil
}
