package entity

import (
	"time"

	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID              uuid.UUID                `db:"id" json:"id"`
	Title           string                   `db:"title" json:"title"`
	Slug            string                   `db:"slug" json:"slug"`
	Description     *string                  `db:"description" json:"description,omitempty"`
	EventDate       *time.Time               `db:"event_date" json:"event_date,omitempty"`
	VenueName       string                   `db:"venue_name" json:"venue_name"`
	VenueAddress    string                   `db:"venue_address" json:"venue_address"`
	VenueCity       string                   `db:"venue_city" json:"venue_city"`
	VenueState      *string                  `db:"venue_state" json:"venue_state,omitempty"`
	VenuePostalCode *string                  `db:"venue_postal_code" json:"venue_postal_code,omitempty"`
	VenueCountry    *string                  `db:"venue_country" json:"venue_country,omitempty"`
	MaxParticipants *int                     `db:"max_participants" json:"max_participants,omitempty"`
	Status          EventStatus              `db:"status" json:"status"`
	EventDirectorID *profileEntity.ProfileID `db:"event_director_id" json:"event_director_id,omitempty"`
	CreatedAt       time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time                `db:"updated_at" json:"updated_at"`
}
