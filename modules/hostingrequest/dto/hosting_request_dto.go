package dto

import (
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"
)

// CreateHostingRequestRequest is the public intake form. Dates are YYYY-MM-DD.
type CreateHostingRequestRequest struct {
	FirstName    string                   `json:"first_name" validate:"required,max=255"`
	LastName     string                   `json:"last_name" validate:"required,max=255"`
	Email        string                   `json:"email" validate:"required,email"`
	Phone        *string                  `json:"phone" validate:"omitempty,max=50"`
	BusinessName *string                  `json:"business_name" validate:"omitempty,max=255"`
	HostType     *string                  `json:"host_type" validate:"omitempty,host_type"`
	UserID       *profileEntity.ProfileID `json:"user_id"`

	EventName          string   `json:"event_name" validate:"required,max=255"`
	EventType          string   `json:"event_type" validate:"required,event_type"`
	EventTypeOther     *string  `json:"event_type_other" validate:"required_if=EventType Other"`
	EventDescription   string   `json:"event_description" validate:"required"`
	EventStartDate     *string  `json:"event_start_date"`
	EventStartTime     *string  `json:"event_start_time" validate:"omitempty,max=20"`
	EventEndDate       *string  `json:"event_end_date"`
	EventEndTime       *string  `json:"event_end_time" validate:"omitempty,max=20"`
	IsMultiDay         bool     `json:"is_multi_day"`
	Day2Date           *string  `json:"day_2_date"`
	Day2StartTime      *string  `json:"day_2_start_time" validate:"omitempty,max=20"`
	Day2EndTime        *string  `json:"day_2_end_time" validate:"omitempty,max=20"`
	Day3Date           *string  `json:"day_3_date"`
	Day3StartTime      *string  `json:"day_3_start_time" validate:"omitempty,max=20"`
	Day3EndTime        *string  `json:"day_3_end_time" validate:"omitempty,max=20"`
	CompetitionFormats []string `json:"competition_formats"`

	VenueName            *string `json:"venue_name" validate:"omitempty,max=255"`
	VenueType            *string `json:"venue_type" validate:"omitempty,max=100"`
	IndoorOutdoor        *string `json:"indoor_outdoor" validate:"omitempty,indoor_outdoor"`
	PowerAvailable       *bool   `json:"power_available"`
	AddressLine1         *string `json:"address_line_1" validate:"omitempty,max=255"`
	AddressLine2         *string `json:"address_line_2" validate:"omitempty,max=255"`
	City                 *string `json:"city" validate:"omitempty,max=255"`
	State                *string `json:"state" validate:"omitempty,max=100"`
	PostalCode           *string `json:"postal_code" validate:"omitempty,max=20"`
	Country              *string `json:"country" validate:"omitempty,max=100"`
	ExpectedParticipants *int    `json:"expected_participants" validate:"omitempty,gte=0"`
	HasHostedBefore      *bool   `json:"has_hosted_before"`

	AdditionalServices   []string `json:"additional_services"`
	OtherServicesDetails *string  `json:"other_services_details"`
	OtherRequests        *string  `json:"other_requests"`
	AdditionalInfo       *string  `json:"additional_info"`

	HasRegistrationFee       *bool    `json:"has_registration_fee"`
	MemberEntryFee           *float64 `json:"member_entry_fee" validate:"omitempty,gte=0"`
	NonMemberEntryFee        *float64 `json:"non_member_entry_fee" validate:"omitempty,gte=0"`
	HasGateFee               *bool    `json:"has_gate_fee"`
	GateFee                  *float64 `json:"gate_fee" validate:"omitempty,gte=0"`
	EstimatedBudget          *string  `json:"estimated_budget" validate:"omitempty,max=100"`
	PreRegistrationAvailable *bool    `json:"pre_registration_available"`
}

// UpdateHostingRequestRequest is a sparse patch: nil fields are left untouched,
// and an empty string on a date field clears it.
type UpdateHostingRequestRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=1,max=255"`
	LastName     *string `json:"last_name" validate:"omitempty,min=1,max=255"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	BusinessName *string `json:"business_name" validate:"omitempty,max=255"`
	HostType     *string `json:"host_type" validate:"omitempty,host_type"`

	EventName          *string   `json:"event_name" validate:"omitempty,min=1,max=255"`
	EventType          *string   `json:"event_type" validate:"omitempty,event_type"`
	EventTypeOther     *string   `json:"event_type_other"`
	EventDescription   *string   `json:"event_description"`
	EventStartDate     *string   `json:"event_start_date"`
	EventStartTime     *string   `json:"event_start_time" validate:"omitempty,max=20"`
	EventEndDate       *string   `json:"event_end_date"`
	EventEndTime       *string   `json:"event_end_time" validate:"omitempty,max=20"`
	IsMultiDay         *bool     `json:"is_multi_day"`
	Day2Date           *string   `json:"day_2_date"`
	Day2StartTime      *string   `json:"day_2_start_time" validate:"omitempty,max=20"`
	Day2EndTime        *string   `json:"day_2_end_time" validate:"omitempty,max=20"`
	Day3Date           *string   `json:"day_3_date"`
	Day3StartTime      *string   `json:"day_3_start_time" validate:"omitempty,max=20"`
	Day3EndTime        *string   `json:"day_3_end_time" validate:"omitempty,max=20"`
	CompetitionFormats *[]string `json:"competition_formats"`

	VenueName            *string `json:"venue_name" validate:"omitempty,max=255"`
	VenueType            *string `json:"venue_type" validate:"omitempty,max=100"`
	IndoorOutdoor        *string `json:"indoor_outdoor" validate:"omitempty,indoor_outdoor"`
	PowerAvailable       *bool   `json:"power_available"`
	AddressLine1         *string `json:"address_line_1" validate:"omitempty,max=255"`
	AddressLine2         *string `json:"address_line_2" validate:"omitempty,max=255"`
	City                 *string `json:"city" validate:"omitempty,max=255"`
	State                *string `json:"state" validate:"omitempty,max=100"`
	PostalCode           *string `json:"postal_code" validate:"omitempty,max=20"`
	Country              *string `json:"country" validate:"omitempty,max=100"`
	ExpectedParticipants *int    `json:"expected_participants" validate:"omitempty,gte=0"`
	HasHostedBefore      *bool   `json:"has_hosted_before"`

	AdditionalServices   *[]string `json:"additional_services"`
	OtherServicesDetails *string   `json:"other_services_details"`
	OtherRequests        *string   `json:"other_requests"`
	AdditionalInfo       *string   `json:"additional_info"`

	HasRegistrationFee       *bool    `json:"has_registration_fee"`
	MemberEntryFee           *float64 `json:"member_entry_fee" validate:"omitempty,gte=0"`
	NonMemberEntryFee        *float64 `json:"non_member_entry_fee" validate:"omitempty,gte=0"`
	HasGateFee               *bool    `json:"has_gate_fee"`
	GateFee                  *float64 `json:"gate_fee" validate:"omitempty,gte=0"`
	EstimatedBudget          *string  `json:"estimated_budget" validate:"omitempty,max=100"`
	PreRegistrationAvailable *bool    `json:"pre_registration_available"`

	Status            *string                  `json:"status" validate:"omitempty,request_status"`
	AdminResponse     *string                  `json:"admin_response"`
	AdminResponseDate *string                  `json:"admin_response_date"`
	AdminResponderID  *profileEntity.ProfileID `json:"admin_responder_id"`
}

type HostingRequestStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	UnderReview int `json:"under_review"`
	Approved    int `json:"approved"`
	Rejected    int `json:"rejected"`
}

type EventDirectorStats struct {
	Assigned      int `json:"assigned"`
	PendingReview int `json:"pending_review"`
	Accepted      int `json:"accepted"`
}

type HostingRequestListResponse struct {
	Data  []entity.HostingRequest `json:"data"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}
