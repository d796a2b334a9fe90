package repository

import (
	"context"
	"database/sql"
	"errors"

	"meca-api/core/database"
	"meca-api/core/logger"
	"meca-api/modules/event/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID) ([]entity.Event, error)
}

// EventRepository joins the caller's transaction when ctx carries one.
type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

const eventColumns = `id, title, slug, description, event_date, venue_name, venue_address, venue_city,
	venue_state, venue_postal_code, venue_country, max_participants, status, event_director_id,
	created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (title, slug, description, event_date, venue_name, venue_address, venue_city,
			venue_state, venue_postal_code, venue_country, max_participants, status, event_director_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Title, event.Slug, event.Description, event.EventDate, event.VenueName, event.VenueAddress,
		event.VenueCity, event.VenueState, event.VenuePostalCode, event.VenueCountry, event.MaxParticipants,
		event.Status, event.EventDirectorID)
	if err != nil {
		logger.Error("EventRepository:Create", "title", event.Title, "error", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", "id", id, "error", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID) ([]entity.Event, error) {
	events := []entity.Event{}
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_director_id = $1 ORDER BY event_date DESC NULLS LAST`
	if err := r.DB.SelectContext(ctx, &events, query, directorID); err != nil {
		logger.Error("EventRepository:ListByEventDirector", "event_director_id", directorID, "error", err)
		return nil, err
	}
	return events, nil
}
