package mapper

import (
	"meca-api/modules/event/dto"
	"meca-api/modules/event/entity"
)

func ToEventEntity(draft *dto.EventDraft, slug string) *entity.Event {
	status := draft.Status
	if status == "" {
		status = entity.EventStatusPending
	}
	return &entity.Event{
		Title:           draft.Title,
		Slug:            slug,
		Description:     draft.Description,
		EventDate:       draft.EventDate,
		VenueName:       draft.VenueName,
		VenueAddress:    draft.VenueAddress,
		VenueCity:       draft.VenueCity,
		VenueState:      draft.VenueState,
		VenuePostalCode: draft.VenuePostalCode,
		VenueCountry:    draft.VenueCountry,
		MaxParticipants: draft.MaxParticipants,
		Status:          status,
		EventDirectorID: draft.EventDirectorID,
	}
}

func ToEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Slug:            e.Slug,
		Description:     e.Description,
		EventDate:       e.EventDate,
		VenueName:       e.VenueName,
		VenueAddress:    e.VenueAddress,
		VenueCity:       e.VenueCity,
		VenueState:      e.VenueState,
		VenuePostalCode: e.VenuePostalCode,
		VenueCountry:    e.VenueCountry,
		MaxParticipants: e.MaxParticipants,
		Status:          string(e.Status),
		EventDirectorID: e.EventDirectorID,
		CreatedAt:       e.CreatedAt,
	}
}

func ToEventResponses(events []entity.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *ToEventResponse(&events[i]))
	}
	return out
}
