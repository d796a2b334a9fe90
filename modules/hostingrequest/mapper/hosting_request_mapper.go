package mapper

import (
	"fmt"
	"strings"
	"time"

	"meca-api/modules/hostingrequest/dto"
	"meca-api/modules/hostingrequest/entity"

	"github.com/lib/pq"
)

const defaultCountry = "United States"

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts YYYY-MM-DD or RFC3339. An empty string means "no date".
func ParseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s: invalid date %q", field, value)
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	return ParseDate(field, *value)
}

func ToHostingRequestEntity(req *dto.CreateHostingRequestRequest) (*entity.HostingRequest, error) {
	r := &entity.HostingRequest{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		UserID:       req.UserID,

		EventName:          strings.TrimSpace(req.EventName),
		EventType:          entity.EventTypeOption(req.EventType),
		EventTypeOther:     req.EventTypeOther,
		EventDescription:   req.EventDescription,
		EventStartTime:     req.EventStartTime,
		EventEndTime:       req.EventEndTime,
		IsMultiDay:         req.IsMultiDay,
		Day2StartTime:      req.Day2StartTime,
		Day2EndTime:        req.Day2EndTime,
		Day3StartTime:      req.Day3StartTime,
		Day3EndTime:        req.Day3EndTime,
		CompetitionFormats: pq.StringArray(req.CompetitionFormats),

		VenueName:            req.VenueName,
		VenueType:            req.VenueType,
		PowerAvailable:       req.PowerAvailable,
		AddressLine1:         req.AddressLine1,
		AddressLine2:         req.AddressLine2,
		City:                 req.City,
		State:                req.State,
		PostalCode:           req.PostalCode,
		Country:              defaultCountry,
		ExpectedParticipants: req.ExpectedParticipants,
		HasHostedBefore:      req.HasHostedBefore,

		AdditionalServices:   pq.StringArray(req.AdditionalServices),
		OtherServicesDetails: req.OtherServicesDetails,
		OtherRequests:        req.OtherRequests,
		AdditionalInfo:       req.AdditionalInfo,

		HasRegistrationFee:       req.HasRegistrationFee,
		MemberEntryFee:           req.MemberEntryFee,
		NonMemberEntryFee:        req.NonMemberEntryFee,
		HasGateFee:               req.HasGateFee,
		GateFee:                  req.GateFee,
		EstimatedBudget:          req.EstimatedBudget,
		PreRegistrationAvailable: req.PreRegistrationAvailable,

		Status:  entity.StatusPending,
		Version: 1,
	}

	if req.HostType != nil {
		ht := entity.HostType(*req.HostType)
		r.HostType = &ht
	}
	if req.IndoorOutdoor != nil {
		io := entity.IndoorOutdoor(*req.IndoorOutdoor)
		r.IndoorOutdoor = &io
	}
	if req.Country != nil && strings.TrimSpace(*req.Country) != "" {
		r.Country = strings.TrimSpace(*req.Country)
	}

	dates := []struct {
		field string
		src   *string
		dst   **time.Time
	}{
		{"event_start_date", req.EventStartDate, &r.EventStartDate},
		{"event_end_date", req.EventEndDate, &r.EventEndDate},
		{"day_2_date", req.Day2Date, &r.Day2Date},
		{"day_3_date", req.Day3Date, &r.Day3Date},
	}
	for _, d := range dates {
		t, err := parseOptionalDate(d.field, d.src)
		if err != nil {
			return nil, err
		}
		*d.dst = t
	}

	return r, nil
}

// ApplyUpdate applies a sparse patch and returns the new state. Workflow
// fields (assignment, ED status, final status, event link) are not patchable.
func ApplyUpdate(r entity.HostingRequest, req *dto.UpdateHostingRequestRequest) (entity.HostingRequest, error) {
	setString(&r.FirstName, req.FirstName)
	setString(&r.LastName, req.LastName)
	setString(&r.Email, req.Email)
	setOptional(&r.Phone, req.Phone)
	setOptional(&r.BusinessName, req.BusinessName)
	if req.HostType != nil {
		ht := entity.HostType(*req.HostType)
		r.HostType = &ht
	}

	setString(&r.EventName, req.EventName)
	if req.EventType != nil {
		r.EventType = entity.EventTypeOption(*req.EventType)
	}
	setOptional(&r.EventTypeOther, req.EventTypeOther)
	setString(&r.EventDescription, req.EventDescription)
	setOptional(&r.EventStartTime, req.EventStartTime)
	setOptional(&r.EventEndTime, req.EventEndTime)
	if req.IsMultiDay != nil {
		r.IsMultiDay = *req.IsMultiDay
	}
	setOptional(&r.Day2StartTime, req.Day2StartTime)
	setOptional(&r.Day2EndTime, req.Day2EndTime)
	setOptional(&r.Day3StartTime, req.Day3StartTime)
	setOptional(&r.Day3EndTime, req.Day3EndTime)
	if req.CompetitionFormats != nil {
		r.CompetitionFormats = pq.StringArray(*req.CompetitionFormats)
	}

	setOptional(&r.VenueName, req.VenueName)
	setOptional(&r.VenueType, req.VenueType)
	if req.IndoorOutdoor != nil {
		io := entity.IndoorOutdoor(*req.IndoorOutdoor)
		r.IndoorOutdoor = &io
	}
	setOptional(&r.PowerAvailable, req.PowerAvailable)
	setOptional(&r.AddressLine1, req.AddressLine1)
	setOptional(&r.AddressLine2, req.AddressLine2)
	setOptional(&r.City, req.City)
	setOptional(&r.State, req.State)
	setOptional(&r.PostalCode, req.PostalCode)
	setString(&r.Country, req.Country)
	setOptional(&r.ExpectedParticipants, req.ExpectedParticipants)
	setOptional(&r.HasHostedBefore, req.HasHostedBefore)

	if req.AdditionalServices != nil {
		r.AdditionalServices = pq.StringArray(*req.AdditionalServices)
	}
	setOptional(&r.OtherServicesDetails, req.OtherServicesDetails)
	setOptional(&r.OtherRequests, req.OtherRequests)
	setOptional(&r.AdditionalInfo, req.AdditionalInfo)

	setOptional(&r.HasRegistrationFee, req.HasRegistrationFee)
	setOptional(&r.MemberEntryFee, req.MemberEntryFee)
	setOptional(&r.NonMemberEntryFee, req.NonMemberEntryFee)
	setOptional(&r.HasGateFee, req.HasGateFee)
	setOptional(&r.GateFee, req.GateFee)
	setOptional(&r.EstimatedBudget, req.EstimatedBudget)
	setOptional(&r.PreRegistrationAvailable, req.PreRegistrationAvailable)

	setOptional(&r.AdminResponse, req.AdminResponse)
	setOptional(&r.AdminResponderID, req.AdminResponderID)

	dates := []struct {
		field string
		src   *string
		dst   **time.Time
	}{
		{"event_start_date", req.EventStartDate, &r.EventStartDate},
		{"event_end_date", req.EventEndDate, &r.EventEndDate},
		{"day_2_date", req.Day2Date, &r.Day2Date},
		{"day_3_date", req.Day3Date, &r.Day3Date},
		{"admin_response_date", req.AdminResponseDate, &r.AdminResponseDate},
	}
	for _, d := range dates {
		if d.src == nil {
			continue
		}
		t, err := ParseDate(d.field, *d.src)
		if err != nil {
			return r, err
		}
		*d.dst = t
	}

	if req.Status != nil {
		next, err := entity.WithStatus(r, entity.RequestStatus(*req.Status))
		if err != nil {
			return r, fmt.Errorf("status: %w", err)
		}
		r = next
	}

	return r, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setOptional[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
