package entity

import (
	"errors"
	"strings"
	"time"

	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
)

var (
	ErrNothingAssigned     = errors.New("no event director is currently assigned to this request")
	ErrNotAssignedDirector = errors.New("you are not the assigned event director for this request")
	ErrAlreadyResponded    = errors.New("assignment has already been responded to")
	ErrReasonRequired      = errors.New("a reason is required")
	ErrNotAwaitingResponse = errors.New("this request is not awaiting a response from the requestor")
	ErrNotRequestOwner     = errors.New("only the original requestor can respond to this request")
	ErrRequestClosed       = errors.New("request is closed")
	ErrEventAlreadyCreated = errors.New("an event has already been created for this request")
	ErrNotApproved         = errors.New("request must be approved before an event can be created")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidFinalStatus  = errors.New("invalid final status")
	ErrMessageRequired     = errors.New("message is required")
	ErrSenderCannotAskInfo = errors.New("only admins or the assigned event director can request information")
)

// The functions below take a request by value and return the next state. They
// never touch storage; the service persists whatever they return.

// WithStatus sets status directly and drops the awaiting flag outside pending-info states.
func WithStatus(r HostingRequest, status RequestStatus) (HostingRequest, error) {
	if !status.Valid() {
		return r, ErrInvalidStatus
	}
	r.Status = status
	if !status.IsPendingInfo() {
		r.AwaitingRequestorResponse = false
	}
	return r, nil
}

func AssignDirector(r HostingRequest, director profileEntity.ProfileID, notes *string, now time.Time) HostingRequest {
	pending := EDStatusPendingReview
	r.AssignedEventDirectorID = &director
	r.AssignedAt = &now
	r.AssignmentNotes = notes
	r.EDStatus = &pending
	r.EDResponseDate = nil
	r.EDRejectionReason = nil
	r, _ = WithStatus(r, StatusAssignedToED)
	return r
}

// ReassignDirector replaces the director and resets the review; notes are kept when none are given.
func ReassignDirector(r HostingRequest, director profileEntity.ProfileID, notes *string, now time.Time) HostingRequest {
	if notes == nil {
		notes = r.AssignmentNotes
	}
	return AssignDirector(r, director, notes, now)
}

func RevokeAssignment(r HostingRequest) (HostingRequest, error) {
	if r.AssignedEventDirectorID == nil {
		return r, ErrNothingAssigned
	}
	r.AssignedEventDirectorID = nil
	r.AssignedAt = nil
	r.AssignmentNotes = nil
	r.EDStatus = nil
	r.EDResponseDate = nil
	r.EDRejectionReason = nil
	r, _ = WithStatus(r, StatusUnderReview)
	return r, nil
}

func checkDirectorResponse(r *HostingRequest, caller profileEntity.ProfileID) error {
	if r.AssignedEventDirectorID == nil || *r.AssignedEventDirectorID != caller {
		return ErrNotAssignedDirector
	}
	if r.EDStatus == nil || *r.EDStatus != EDStatusPendingReview {
		return ErrAlreadyResponded
	}
	return nil
}

func AcceptAssignment(r HostingRequest, caller profileEntity.ProfileID, now time.Time) (HostingRequest, error) {
	if err := checkDirectorResponse(&r, caller); err != nil {
		return r, err
	}
	accepted := EDStatusAccepted
	r.EDStatus = &accepted
	r.EDResponseDate = &now
	r, _ = WithStatus(r, StatusEDAccepted)
	return r, nil
}

func RejectAssignment(r HostingRequest, caller profileEntity.ProfileID, reason string, now time.Time) (HostingRequest, error) {
	if err := checkDirectorResponse(&r, caller); err != nil {
		return r, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return r, ErrReasonRequired
	}
	rejected := EDStatusRejectedToAdmin
	r.EDStatus = &rejected
	r.EDResponseDate = &now
	r.EDRejectionReason = &reason
	r, _ = WithStatus(r, StatusEDRejected)
	return r, nil
}

func ApplyFinalDecision(r HostingRequest, admin profileEntity.ProfileID, final FinalStatus, reason *string, now time.Time) (HostingRequest, FinalOutcome, error) {
	outcome, err := final.Outcome()
	if err != nil {
		return r, outcome, ErrInvalidFinalStatus
	}
	r.FinalStatus = &final
	r.FinalStatusReason = reason
	r.AdminResponderID = &admin
	r.AdminResponseDate = &now
	r.Status = outcome.Status
	r.AwaitingRequestorResponse = outcome.Awaiting
	return r, outcome, nil
}

// RespondAsAdmin is the legacy single-step admin response.
func RespondAsAdmin(r HostingRequest, admin profileEntity.ProfileID, response string, status RequestStatus, now time.Time) (HostingRequest, error) {
	next, err := WithStatus(r, status)
	if err != nil {
		return r, err
	}
	next.AdminResponse = &response
	next.AdminResponseDate = &now
	next.AdminResponderID = &admin
	return next, nil
}

// RequestInfo pauses the request for the requestor. Approved requests stay approved.
func RequestInfo(r HostingRequest) (HostingRequest, error) {
	if r.Status.IsClosed() {
		return r, ErrRequestClosed
	}
	status := StatusPendingInfo
	if r.Status.IsApproved() {
		status = StatusApprovedPendingInfo
	}
	r, _ = WithStatus(r, status)
	r.AwaitingRequestorResponse = true
	return r, nil
}

// AcceptRequestorReply checks the awaiting flag before the caller's identity.
func AcceptRequestorReply(r HostingRequest, requestor profileEntity.ProfileID) (HostingRequest, error) {
	if !r.AwaitingRequestorResponse {
		return r, ErrNotAwaitingResponse
	}
	if !r.IsOwnedBy(requestor) {
		return r, ErrNotRequestOwner
	}
	r.AwaitingRequestorResponse = false
	return r, nil
}

// ReplyRecipient routes a requestor reply to everyone when a director is assigned, else to admins.
func ReplyRecipient(r *HostingRequest) RecipientType {
	if r.HasAssignedDirector() {
		return RecipientAll
	}
	return RecipientAdmin
}

// LinkEvent records the materialized event. It can only happen once.
func LinkEvent(r HostingRequest, eventID uuid.UUID) (HostingRequest, error) {
	if r.CreatedEventID != nil {
		return r, ErrEventAlreadyCreated
	}
	r.CreatedEventID = &eventID
	return r, nil
}
