package service

import (
	"context"
	stdErrors "errors"
	"testing"

	"meca-api/core/errors"
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHostingRequestService_Assign(t *testing.T) {
	f := newFixture(t)
	r := f.seed()

	updated, appErr := f.svc.Assign(context.Background(), r.ID, f.director.ID, f.admin.ID, strPtr("closest ED"))
	require.Nil(t, appErr)

	assert.Equal(t, entity.StatusAssignedToED, updated.Status)
	assert.Equal(t, f.director.ID, *updated.AssignedEventDirectorID)
	assert.Equal(t, entity.EDStatusPendingReview, *updated.EDStatus)
	assert.Equal(t, fixedNow, *updated.AssignedAt)
	assert.Equal(t, "closest ED", *updated.AssignmentNotes)

	sent := f.notifier.to(f.director.ID)
	require.Len(t, sent, 1)
	assert.Equal(t, "New Hosting Request Assignment", sent[0].Title)
	assert.Equal(t, "/hosting-requests/"+r.ID.String(), sent[0].Link)
	assert.Empty(t, f.notifier.to(f.requestor.ID))
}

func TestHostingRequestService_Assign_AdminCanDirect(t *testing.T) {
	f := newFixture(t)
	r := f.seed()

	updated, appErr := f.svc.Assign(context.Background(), r.ID, f.admin2.ID, f.admin.ID, nil)
	require.Nil(t, appErr)
	assert.Equal(t, f.admin2.ID, *updated.AssignedEventDirectorID)
}

func TestHostingRequestService_Assign_RejectsInvalidDirector(t *testing.T) {
	f := newFixture(t)
	r := f.seed()
	unknown := profileEntity.ProfileID(uuid.New())
	f.profiles.On("GetByID", mock.Anything, unknown).
		Return(nil, errors.NewAppError(errors.ErrNotFound, "Profile not found", nil))

	_, appErr := f.svc.Assign(context.Background(), r.ID, f.member.ID, f.admin.ID, nil)
	requireCode(t, appErr, errors.ErrInvalidState)

	_, appErr = f.svc.Assign(context.Background(), r.ID, unknown, f.admin.ID, nil)
	requireCode(t, appErr, errors.ErrNotFound)

	assert.Equal(t, r, f.repo.get(r.ID))
	assert.Empty(t, f.notifier.sent)
}

func TestHostingRequestService_Assign_MissingRequest(t *testing.T) {
	f := newFixture(t)

	_, appErr := f.svc.Assign(context.Background(), uuid.New(), f.director.ID, f.admin.ID, nil)

	requireCode(t, appErr, errors.ErrNotFound)
	assert.Empty(t, f.notifier.sent)
}

func TestHostingRequestService_Assign_NotifierFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = stdErrors.New("queue down")
	r := f.seed()

	updated, appErr := f.svc.Assign(context.Background(), r.ID, f.director.ID, f.admin.ID, nil)

	require.Nil(t, appErr)
	assert.Equal(t, entity.StatusAssignedToED, updated.Status)
}

func TestHostingRequestService_Reassign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.assigned(func(r *entity.HostingRequest) {
		r.AssignmentNotes = strPtr("original notes")
	})
	_, appErr := f.svc.RejectAssignment(ctx, r.ID, f.directorRegistry, f.director.ID, "out of town")
	require.Nil(t, appErr)
	f.notifier.reset()

	updated, appErr := f.svc.Reassign(ctx, r.ID, f.director2.ID, f.admin.ID, nil)
	require.Nil(t, appErr)

	assert.Equal(t, entity.StatusAssignedToED, updated.Status)
	assert.Equal(t, f.director2.ID, *updated.AssignedEventDirectorID)
	assert.Equal(t, entity.EDStatusPendingReview, *updated.EDStatus)
	assert.Nil(t, updated.EDRejectionReason)
	assert.Nil(t, updated.EDResponseDate)
	assert.Equal(t, "original notes", *updated.AssignmentNotes)

	assert.Equal(t, []string{"New Hosting Request Assignment"}, titles(f.notifier.to(f.director2.ID)))
	assert.Empty(t, f.notifier.to(f.director.ID))
}

func TestHostingRequestService_RevokeAssignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.assigned()

	updated, appErr := f.svc.RevokeAssignment(ctx, r.ID, f.admin.ID, strPtr("double booked"))
	require.Nil(t, appErr)

	assert.Equal(t, entity.StatusUnderReview, updated.Status)
	assert.Nil(t, updated.AssignedEventDirectorID)
	assert.Nil(t, updated.EDStatus)
	assert.Nil(t, updated.AssignedAt)

	msgs := f.messages.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Assignment revoked: double booked", msgs[0].Message)
	assert.True(t, msgs[0].IsPrivate)
	assert.Equal(t, entity.SenderAdmin, msgs[0].SenderRole)
	assert.Equal(t, entity.RecipientEventDirector, *msgs[0].RecipientType)

	sent := f.notifier.to(f.director.ID)
	require.Len(t, sent, 1)
	assert.Equal(t, "Hosting Request Assignment Revoked", sent[0].Title)
	assert.Contains(t, sent[0].Message, "Reason: double booked")
	assert.Empty(t, f.notifier.to(f.requestor.ID))

	_, appErr = f.svc.RevokeAssignment(ctx, r.ID, f.admin.ID, strPtr("again"))
	requireCode(t, appErr, errors.ErrInvalidState)
	assert.Len(t, f.messages.all(), 1)
}

func TestHostingRequestService_RevokeAssignment_WithoutReason(t *testing.T) {
	f := newFixture(t)
	r := f.assigned()

	_, appErr := f.svc.RevokeAssignment(context.Background(), r.ID, f.admin.ID, nil)
	require.Nil(t, appErr)

	assert.Empty(t, f.messages.all())
	sent := f.notifier.to(f.director.ID)
	require.Len(t, sent, 1)
	assert.NotContains(t, sent[0].Message, "Reason:")
}
