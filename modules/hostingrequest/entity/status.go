package entity

import "fmt"

type RequestStatus string

const (
	StatusPending             RequestStatus = "pending"
	StatusAssignedToED        RequestStatus = "assigned_to_ed"
	StatusEDReviewing         RequestStatus = "ed_reviewing"
	StatusEDAccepted          RequestStatus = "ed_accepted"
	StatusEDRejected          RequestStatus = "ed_rejected"
	StatusUnderReview         RequestStatus = "under_review"
	StatusApproved            RequestStatus = "approved"
	StatusApprovedPendingInfo RequestStatus = "approved_pending_info"
	StatusPendingInfo         RequestStatus = "pending_info"
	StatusRejected            RequestStatus = "rejected"
	StatusCancelled           RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAssignedToED, StatusEDReviewing, StatusEDAccepted, StatusEDRejected,
		StatusUnderReview, StatusApproved, StatusApprovedPendingInfo, StatusPendingInfo,
		StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsPendingInfo reports whether the status may carry the awaiting-requestor flag.
func (s RequestStatus) IsPendingInfo() bool {
	switch s {
	case StatusPendingInfo, StatusApprovedPendingInfo:
		return true
	case StatusPending, StatusAssignedToED, StatusEDReviewing, StatusEDAccepted, StatusEDRejected,
		StatusUnderReview, StatusApproved, StatusRejected, StatusCancelled:
		return false
	}
	return false
}

func (s RequestStatus) IsApproved() bool {
	switch s {
	case StatusApproved, StatusApprovedPendingInfo:
		return true
	case StatusPending, StatusAssignedToED, StatusEDReviewing, StatusEDAccepted, StatusEDRejected,
		StatusUnderReview, StatusPendingInfo, StatusRejected, StatusCancelled:
		return false
	}
	return false
}

// IsClosed is true for statuses no workflow action reopens.
func (s RequestStatus) IsClosed() bool {
	switch s {
	case StatusRejected, StatusCancelled:
		return true
	case StatusPending, StatusAssignedToED, StatusEDReviewing, StatusEDAccepted, StatusEDRejected,
		StatusUnderReview, StatusApproved, StatusApprovedPendingInfo, StatusPendingInfo:
		return false
	}
	return false
}

type EDStatus string

const (
	EDStatusPendingReview   EDStatus = "pending_review"
	EDStatusAccepted        EDStatus = "accepted"
	EDStatusRejectedToAdmin EDStatus = "rejected_to_admin"
)

func (s EDStatus) Valid() bool {
	switch s {
	case EDStatusPendingReview, EDStatusAccepted, EDStatusRejectedToAdmin:
		return true
	}
	return false
}

type FinalStatus string

const (
	FinalApproved            FinalStatus = "approved"
	FinalApprovedPendingInfo FinalStatus = "approved_pending_info"
	FinalRejected            FinalStatus = "rejected"
	FinalPendingInfo         FinalStatus = "pending_info"
)

func (s FinalStatus) Valid() bool {
	_, err := s.Outcome()
	return err == nil
}

// FinalOutcome is what a final decision does to the request.
type FinalOutcome struct {
	Status      RequestStatus
	Awaiting    bool
	Materialize bool
}

// Outcome is the final-approval transition table.
func (s FinalStatus) Outcome() (FinalOutcome, error) {
	switch s {
	case FinalApproved:
		return FinalOutcome{Status: StatusApproved, Awaiting: false, Materialize: true}, nil
	case FinalApprovedPendingInfo:
		return FinalOutcome{Status: StatusApprovedPendingInfo, Awaiting: true, Materialize: true}, nil
	case FinalRejected:
		return FinalOutcome{Status: StatusRejected, Awaiting: false, Materialize: false}, nil
	case FinalPendingInfo:
		return FinalOutcome{Status: StatusPendingInfo, Awaiting: true, Materialize: false}, nil
	}
	return FinalOutcome{}, fmt.Errorf("unknown final status %q", string(s))
}

type SenderRole string

const (
	SenderRequestor     SenderRole = "requestor"
	SenderEventDirector SenderRole = "event_director"
	SenderAdmin         SenderRole = "admin"
)

func (r SenderRole) Valid() bool {
	switch r {
	case SenderRequestor, SenderEventDirector, SenderAdmin:
		return true
	}
	return false
}

// SeesPrivateMessages is the only read rule on the message thread.
func (r SenderRole) SeesPrivateMessages() bool {
	switch r {
	case SenderEventDirector, SenderAdmin:
		return true
	case SenderRequestor:
		return false
	}
	return false
}

type RecipientType string

const (
	RecipientRequestor     RecipientType = "requestor"
	RecipientEventDirector RecipientType = "event_director"
	RecipientAdmin         RecipientType = "admin"
	RecipientAll           RecipientType = "all"
)

func (r RecipientType) Valid() bool {
	switch r {
	case RecipientRequestor, RecipientEventDirector, RecipientAdmin, RecipientAll:
		return true
	}
	return false
}

func (r RecipientType) includes(target RecipientType) bool {
	switch r {
	case RecipientAll:
		return true
	case RecipientRequestor, RecipientEventDirector, RecipientAdmin:
		return r == target
	}
	return false
}

type HostType string

const (
	HostBusiness     HostType = "business"
	HostIndividual   HostType = "individual"
	HostOrganization HostType = "organization"
	HostOther        HostType = "other"
)

func (h HostType) Valid() bool {
	switch h {
	case HostBusiness, HostIndividual, HostOrganization, HostOther:
		return true
	}
	return false
}

type IndoorOutdoor string

const (
	Indoor  IndoorOutdoor = "indoor"
	Outdoor IndoorOutdoor = "outdoor"
	Both    IndoorOutdoor = "both"
)

func (v IndoorOutdoor) Valid() bool {
	switch v {
	case Indoor, Outdoor, Both:
		return true
	}
	return false
}

type EventTypeOption string

const (
	EventType1X        EventTypeOption = "1x Event"
	EventType2X        EventTypeOption = "2x Event"
	EventType3X        EventTypeOption = "3x Event"
	EventType4X        EventTypeOption = "4x Event"
	EventTypeBranded   EventTypeOption = "Branded Event"
	EventTypeSponsored EventTypeOption = "Sponsored Event"
	EventTypeOther     EventTypeOption = "Other"
)

func (t EventTypeOption) Valid() bool {
	switch t {
	case EventType1X, EventType2X, EventType3X, EventType4X, EventTypeBranded, EventTypeSponsored, EventTypeOther:
		return true
	}
	return false
}
