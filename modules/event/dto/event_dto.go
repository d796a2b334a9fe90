package dto

import (
	"time"

	"meca-api/modules/event/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

// EventDraft is what other modules hand to EventService.Create.
type EventDraft struct {
	Title           string
	Description     *string
	EventDate       *time.Time
	VenueName       string
	VenueAddress    string
	VenueCity       string
	VenueState      *string
	VenuePostalCode *string
	VenueCountry    *string
	MaxParticipants *int
	Status          entity.EventStatus
	EventDirectorID *profileEntity.ProfileID
}

type EventResponse struct {
	ID              uuid.UUID                `json:"id"`
	Title           string                   `json:"title"`
	Slug            string                   `json:"slug"`
	Description     *string                  `json:"description,omitempty"`
	EventDate       *time.Time               `json:"event_date,omitempty"`
	VenueName       string                   `json:"venue_name"`
	VenueAddress    string                   `json:"venue_address"`
	VenueCity       string                   `json:"venue_city"`
	VenueState      *string                  `json:"venue_state,omitempty"`
	VenuePostalCode *string                  `json:"venue_postal_code,omitempty"`
	VenueCountry    *string                  `json:"venue_country,omitempty"`
	MaxParticipants *int                     `json:"max_participants,omitempty"`
	Status          string                   `json:"status"`
	EventDirectorID *profileEntity.ProfileID `json:"event_director_id,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
}
