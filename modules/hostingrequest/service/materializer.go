package service

import (
	"context"
	"fmt"
	"strings"

	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/core/logger"
	eventDto "meca-api/modules/event/dto"
	eventEntity "meca-api/modules/event/entity"
	"meca-api/modules/hostingrequest/entity"
	notificationEntity "meca-api/modules/notification/entity"

	"github.com/google/uuid"
)

const venueTBD = "TBD"

// BuildEventDraft maps an approved request onto a new event. The event always
// starts pending.
func BuildEventDraft(r *entity.HostingRequest) *eventDto.EventDraft {
	draft := &eventDto.EventDraft{
		Title:           r.EventName,
		EventDate:       r.EventStartDate,
		VenueName:       orTBD(r.VenueName),
		VenueAddress:    joinAddress(r.AddressLine1, r.AddressLine2),
		VenueCity:       orTBD(r.City),
		VenueState:      r.State,
		VenuePostalCode: r.PostalCode,
		MaxParticipants: r.ExpectedParticipants,
		Status:          eventEntity.EventStatusPending,
		EventDirectorID: r.AssignedEventDirectorID,
	}
	if r.EventDescription != "" {
		description := r.EventDescription
		draft.Description = &description
	}
	if r.Country != "" {
		country := r.Country
		draft.VenueCountry = &country
	}
	return draft
}

func orTBD(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return venueTBD
	}
	return strings.TrimSpace(*v)
}

func joinAddress(lines ...*string) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != nil && strings.TrimSpace(*l) != "" {
			parts = append(parts, strings.TrimSpace(*l))
		}
	}
	if len(parts) == 0 {
		return venueTBD
	}
	return strings.Join(parts, ", ")
}

// materialize creates the event and links it. It must run inside the
// transaction that holds the request's row lock.
func (s *HostingRequestService) materialize(ctx context.Context, r entity.HostingRequest) (entity.HostingRequest, *eventEntity.Event, *errors.AppError) {
	if r.CreatedEventID != nil {
		return r, nil, transitionError(entity.ErrEventAlreadyCreated)
	}

	event, appErr := s.events.Create(ctx, BuildEventDraft(&r))
	if appErr != nil {
		return r, nil, appErr
	}

	linked, err := entity.LinkEvent(r, event.ID)
	if err != nil {
		return r, nil, transitionError(err)
	}
	return linked, event, nil
}

func (s *HostingRequestService) announceEvent(ctx context.Context, r *entity.HostingRequest, event *eventEntity.Event) {
	logger.Info("HostingRequestService:Materialize:EventCreated", "request_id", r.ID, "event_id", event.ID, "slug", event.Slug)
	s.sendAdmins(ctx, nil, "Event Created from Hosting Request",
		fmt.Sprintf("The event \"%s\" was created from an approved hosting request.", event.Title),
		notificationEntity.NotificationTypeSystem, "/events/"+event.ID.String(), r)
}

// CreateEventFromRequest materializes an approved request. It fails with a
// conflict when the request already has an event.
func (s *HostingRequestService) CreateEventFromRequest(ctx context.Context, id uuid.UUID) (*eventEntity.Event, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var event *eventEntity.Event
	_, updated, appErr := s.mutate(ctx, id, func(ctx context.Context, r entity.HostingRequest) (entity.HostingRequest, *errors.AppError) {
		if r.CreatedEventID != nil {
			return r, transitionError(entity.ErrEventAlreadyCreated)
		}
		if !r.Status.IsApproved() {
			return r, transitionError(entity.ErrNotApproved)
		}
		next, created, appErr := s.materialize(ctx, r)
		if appErr != nil {
			return r, appErr
		}
		event = created
		return next, nil
	})
	if appErr != nil {
		return nil, appErr
	}

	s.announceEvent(ctx, updated, event)
	return event, nil
}
