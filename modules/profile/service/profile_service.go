package service

import (
	"context"
	"fmt"

	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/core/logger"
	"meca-api/modules/profile/entity"
	"meca-api/modules/profile/repository"
)

type ProfileServiceInterface interface {
	GetByID(ctx context.Context, id entity.ProfileID) (*entity.Profile, *errors.AppError)
	ListAdmins(ctx context.Context) ([]entity.Profile, *errors.AppError)
	ResolveEventDirector(ctx context.Context, id entity.EventDirectorID) (entity.ProfileID, *errors.AppError)
	ListAvailableEventDirectors(ctx context.Context) ([]entity.Profile, *errors.AppError)
}

type ProfileService struct {
	repo repository.ProfileRepositoryInterface
}

func NewProfileService(repo repository.ProfileRepositoryInterface) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetByID(ctx context.Context, id entity.ProfileID) (*entity.Profile, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get profile failed", err)
	}
	if profile == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, fmt.Sprintf("Profile with ID %s not found", id), nil)
	}
	return profile, nil
}

// ListAdmins is read on every call; admin membership changes show up on the next fan-out.
func (s *ProfileService) ListAdmins(ctx context.Context) ([]entity.Profile, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	admins, err := s.repo.ListByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list admins failed", err)
	}
	return admins, nil
}

// ResolveEventDirector maps a registry id to the profile that owns it. This is
// the only place an EventDirectorID becomes a ProfileID.
func (s *ProfileService) ResolveEventDirector(ctx context.Context, id entity.EventDirectorID) (entity.ProfileID, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	ed, err := s.repo.GetEventDirector(ctx, id)
	if err != nil {
		return entity.NilProfileID, errors.NewAppError(errors.ErrGetFailed, "get event director failed", err)
	}
	if ed == nil {
		logger.Warn("ProfileService:ResolveEventDirector:NotFound", "event_director_id", id)
		return entity.NilProfileID, errors.NewAppError(errors.ErrNotFound, fmt.Sprintf("Event director with ID %s not found", id), nil)
	}
	return ed.UserID, nil
}

func (s *ProfileService) ListAvailableEventDirectors(ctx context.Context) ([]entity.Profile, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	profiles, err := s.repo.ListActiveEventDirectorProfiles(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list event directors failed", err)
	}
	return profiles, nil
}
