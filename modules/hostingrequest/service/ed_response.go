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

// resolveDirector maps a registry id to its profile. The profile must be the
// authenticated caller.
func (s *HostingRequestService) resolveDirector(ctx context.Context, registryID profileEntity.EventDirectorID, caller profileEntity.ProfileID) (profileEntity.ProfileID, *errors.AppError) {
	director, appErr := s.profiles.ResolveEventDirector(ctx, registryID)
	if appErr != nil {
		return profileEntity.NilProfileID, appErr
	}
	if director != caller {
		logger.Warn("HostingRequestService:resolveDirector:Mismatch", "registry_id", registryID, "caller", caller)
		return profileEntity.NilProfileID, errors.NewAppError(errors.ErrForbidden, "event director registry entry belongs to another profile", nil)
	}
	return director, nil
}

// AcceptAssignment records the director's acceptance. registryID is resolved to
// a profile that must be the caller and the assigned director.
func (s *HostingRequestService) AcceptAssignment(ctx context.Context, id uuid.UUID, registryID profileEntity.EventDirectorID, callerID profileEntity.ProfileID) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	caller, appErr := s.resolveDirector(ctx, registryID, callerID)
	if appErr != nil {
		return nil, appErr
	}

	_, updated, appErr := s.mutate(ctx, id, func(_ context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		next, err := entity.AcceptAssignment(r, caller, s.now())
		if err != nil {
			return r, transitionError(err)
		}
		return next, nil
	})
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("HostingRequestService:AcceptAssignment:Accepted", "id", id, "event_director_id", caller)
	s.invalidateStats(ctx, &caller)
	s.notifyAdmins(ctx, nil, "Event Director Accepted Assignment",
		fmt.Sprintf("%s accepted the request to host \"%s\".", s.directorName(ctx, caller), updated.EventName),
		updated)
	return updated, nil
}

// RejectAssignment hands the request back to admins. The requestor is not told.
func (s *HostingRequestService) RejectAssignment(ctx context.Context, id uuid.UUID, registryID profileEntity.EventDirectorID, callerID profileEntity.ProfileID, reason string) (*entity.HostingRequest, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	caller, appErr := s.resolveDirector(ctx, registryID, callerID)
	if appErr != nil {
		return nil, appErr
	}

	_, updated, appErr := s.mutate(ctx, id, func(_ context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		next, err := entity.RejectAssignment(r, caller, reason, s.now())
		if err != nil {
			return r, transitionError(err)
		}
		return next, nil
	})
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("HostingRequestService:RejectAssignment:Rejected", "id", id, "event_director_id", caller)
	s.invalidateStats(ctx, &caller)
	s.notifyAdmins(ctx, nil, "Event Director Declined Assignment",
		withReason(fmt.Sprintf("%s declined the request to host \"%s\".", s.directorName(ctx, caller), updated.EventName),
			updated.EDRejectionReason),
		updated)
	return updated, nil
}
