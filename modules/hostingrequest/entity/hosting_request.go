package entity

import (
	"time"

	coreEntity "meca-api/core/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type HostingRequest struct {
	coreEntity.BaseEntity

	FirstName    string                   `db:"first_name" json:"first_name"`
	LastName     string                   `db:"last_name" json:"last_name"`
	Email        string                   `db:"email" json:"email"`
	Phone        *string                  `db:"phone" json:"phone,omitempty"`
	BusinessName *string                  `db:"business_name" json:"business_name,omitempty"`
	HostType     *HostType                `db:"host_type" json:"host_type,omitempty"`
	UserID       *profileEntity.ProfileID `db:"user_id" json:"user_id,omitempty"`

	EventName          string          `db:"event_name" json:"event_name"`
	EventType          EventTypeOption `db:"event_type" json:"event_type"`
	EventTypeOther     *string         `db:"event_type_other" json:"event_type_other,omitempty"`
	EventDescription   string          `db:"event_description" json:"event_description"`
	EventStartDate     *time.Time      `db:"event_start_date" json:"event_start_date,omitempty"`
	EventStartTime     *string         `db:"event_start_time" json:"event_start_time,omitempty"`
	EventEndDate       *time.Time      `db:"event_end_date" json:"event_end_date,omitempty"`
	EventEndTime       *string         `db:"event_end_time" json:"event_end_time,omitempty"`
	IsMultiDay         bool            `db:"is_multi_day" json:"is_multi_day"`
	Day2Date           *time.Time      `db:"day_2_date" json:"day_2_date,omitempty"`
	Day2StartTime      *string         `db:"day_2_start_time" json:"day_2_start_time,omitempty"`
	Day2EndTime        *string         `db:"day_2_end_time" json:"day_2_end_time,omitempty"`
	Day3Date           *time.Time      `db:"day_3_date" json:"day_3_date,omitempty"`
	Day3StartTime      *string         `db:"day_3_start_time" json:"day_3_start_time,omitempty"`
	Day3EndTime        *string         `db:"day_3_end_time" json:"day_3_end_time,omitempty"`
	CompetitionFormats pq.StringArray  `db:"competition_formats" json:"competition_formats"`

	VenueName            *string        `db:"venue_name" json:"venue_name,omitempty"`
	VenueType            *string        `db:"venue_type" json:"venue_type,omitempty"`
	IndoorOutdoor        *IndoorOutdoor `db:"indoor_outdoor" json:"indoor_outdoor,omitempty"`
	PowerAvailable       *bool          `db:"power_available" json:"power_available,omitempty"`
	AddressLine1         *string        `db:"address_line_1" json:"address_line_1,omitempty"`
	AddressLine2         *string        `db:"address_line_2" json:"address_line_2,omitempty"`
	City                 *string        `db:"city" json:"city,omitempty"`
	State                *string        `db:"state" json:"state,omitempty"`
	PostalCode           *string        `db:"postal_code" json:"postal_code,omitempty"`
	Country              string         `db:"country" json:"country"`
	ExpectedParticipants *int           `db:"expected_participants" json:"expected_participants,omitempty"`
	HasHostedBefore      *bool          `db:"has_hosted_before" json:"has_hosted_before,omitempty"`

	AdditionalServices   pq.StringArray `db:"additional_services" json:"additional_services"`
	OtherServicesDetails *string        `db:"other_services_details" json:"other_services_details,omitempty"`
	OtherRequests        *string        `db:"other_requests" json:"other_requests,omitempty"`
	AdditionalInfo       *string        `db:"additional_info" json:"additional_info,omitempty"`

	HasRegistrationFee       *bool    `db:"has_registration_fee" json:"has_registration_fee,omitempty"`
	MemberEntryFee           *float64 `db:"member_entry_fee" json:"member_entry_fee,omitempty"`
	NonMemberEntryFee        *float64 `db:"non_member_entry_fee" json:"non_member_entry_fee,omitempty"`
	HasGateFee               *bool    `db:"has_gate_fee" json:"has_gate_fee,omitempty"`
	GateFee                  *float64 `db:"gate_fee" json:"gate_fee,omitempty"`
	EstimatedBudget          *string  `db:"estimated_budget" json:"estimated_budget,omitempty"`
	PreRegistrationAvailable *bool    `db:"pre_registration_available" json:"pre_registration_available,omitempty"`

	Status                    RequestStatus `db:"status" json:"status"`
	EDStatus                  *EDStatus     `db:"ed_status" json:"ed_status,omitempty"`
	FinalStatus               *FinalStatus  `db:"final_status" json:"final_status,omitempty"`
	FinalStatusReason         *string       `db:"final_status_reason" json:"final_status_reason,omitempty"`
	AwaitingRequestorResponse bool          `db:"awaiting_requestor_response" json:"awaiting_requestor_response"`

	AssignedEventDirectorID *profileEntity.ProfileID `db:"assigned_event_director_id" json:"assigned_event_director_id,omitempty"`
	AssignedAt              *time.Time               `db:"assigned_at" json:"assigned_at,omitempty"`
	AssignmentNotes         *string                  `db:"assignment_notes" json:"assignment_notes,omitempty"`
	EDResponseDate          *time.Time               `db:"ed_response_date" json:"ed_response_date,omitempty"`
	EDRejectionReason       *string                  `db:"ed_rejection_reason" json:"ed_rejection_reason,omitempty"`

	AdminResponse     *string                  `db:"admin_response" json:"admin_response,omitempty"`
	AdminResponseDate *time.Time               `db:"admin_response_date" json:"admin_response_date,omitempty"`
	AdminResponderID  *profileEntity.ProfileID `db:"admin_responder_id" json:"admin_responder_id,omitempty"`

	CreatedEventID *uuid.UUID `db:"created_event_id" json:"created_event_id,omitempty"`

	Version int `db:"version" json:"version"`
}

// IsOwnedBy reports whether id is the requestor's linked account.
func (r *HostingRequest) IsOwnedBy(id profileEntity.ProfileID) bool {
	return r.UserID != nil && *r.UserID == id
}

func (r *HostingRequest) HasAssignedDirector() bool {
	return r.AssignedEventDirectorID != nil
}

func (r *HostingRequest) RequestorName() string {
	name := r.FirstName
	if r.LastName != "" {
		if name != "" {
			name += " "
		}
		name += r.LastName
	}
	return name
}

type PaginatedHostingRequestEntity = coreEntity.Pagination[HostingRequest]

// StatusCount is one row of a GROUP BY status query.
type StatusCount struct {
	Status RequestStatus `db:"status"`
	Count  int           `db:"count"`
}

type EventDirectorCounts struct {
	Assigned      int `db:"assigned"`
	PendingReview int `db:"pending_review"`
	Accepted      int `db:"accepted"`
}
