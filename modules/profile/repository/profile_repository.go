package repository

import (
	"context"
	"database/sql"
	"errors"

	"meca-api/core/database"
	"meca-api/core/logger"
	"meca-api/modules/profile/entity"
)

type ProfileRepositoryInterface interface {
	GetByID(ctx context.Context, id entity.ProfileID) (*entity.Profile, error)
	ListByRole(ctx context.Context, role entity.Role) ([]entity.Profile, error)
	GetEventDirector(ctx context.Context, id entity.EventDirectorID) (*entity.EventDirector, error)
	ListActiveEventDirectorProfiles(ctx context.Context) ([]entity.Profile, error)
}

type ProfileRepository struct {
	DB database.Database
}

func NewProfileRepository(db database.Database) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

const profileColumns = `id, email, first_name, last_name, phone, role, created_at, updated_at`

func (r *ProfileRepository) GetByID(ctx context.Context, id entity.ProfileID) (*entity.Profile, error) {
	var profile entity.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	err := r.DB.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ProfileRepository:GetByID", "id", id, "error", err)
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) ListByRole(ctx context.Context, role entity.Role) ([]entity.Profile, error) {
	profiles := []entity.Profile{}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE role = $1 ORDER BY created_at`
	if err := r.DB.SelectContext(ctx, &profiles, query, role); err != nil {
		logger.Error("ProfileRepository:ListByRole", "role", role, "error", err)
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) GetEventDirector(ctx context.Context, id entity.EventDirectorID) (*entity.EventDirector, error) {
	var ed entity.EventDirector
	query := `
		SELECT id, user_id, is_active, region, created_at, updated_at
		FROM event_directors
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &ed, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ProfileRepository:GetEventDirector", "id", id, "error", err)
		return nil, err
	}
	return &ed, nil
}

func (r *ProfileRepository) ListActiveEventDirectorProfiles(ctx context.Context) ([]entity.Profile, error) {
	profiles := []entity.Profile{}
	query := `
		SELECT p.id, p.email, p.first_name, p.last_name, p.phone, p.role, p.created_at, p.updated_at
		FROM profiles p
		JOIN event_directors ed ON ed.user_id = p.id
		WHERE ed.is_active = TRUE
		ORDER BY p.first_name, p.last_name
	`
	if err := r.DB.SelectContext(ctx, &profiles, query); err != nil {
		logger.Error("ProfileRepository:ListActiveEventDirectorProfiles", "error", err)
		return nil, err
	}
	return profiles, nil
}
