package service

import (
	"context"
	"testing"

	"meca-api/core/errors"
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHostingRequestService_AcceptAssignment(t *testing.T) {
	f := newFixture(t)
	r := f.assigned()

	updated, appErr := f.svc.AcceptAssignment(context.Background(), r.ID, f.directorRegistry, f.director.ID)
	require.Nil(t, appErr)

	assert.Equal(t, entity.StatusEDAccepted, updated.Status)
	assert.Equal(t, entity.EDStatusAccepted, *updated.EDStatus)
	assert.Equal(t, fixedNow, *updated.EDResponseDate)

	for _, admin := range []profileEntity.Profile{f.admin, f.admin2} {
		sent := f.notifier.to(admin.ID)
		require.Len(t, sent, 1)
		assert.Equal(t, "Event Director Accepted Assignment", sent[0].Title)
		assert.Contains(t, sent[0].Message, "Dee Director")
	}
	assert.Empty(t, f.notifier.to(f.requestor.ID))
	assert.Empty(t, f.notifier.to(f.director.ID))
}

func TestHostingRequestService_AcceptAssignment_WrongDirector(t *testing.T) {
	f := newFixture(t)
	r := f.assigned()

	_, appErr := f.svc.AcceptAssignment(context.Background(), r.ID, f.director2Registry, f.director2.ID)

	requireCode(t, appErr, errors.ErrInvalidState)
	assert.Equal(t, r, f.repo.get(r.ID))
	assert.Empty(t, f.notifier.sent)
}

func TestHostingRequestService_AcceptAssignment_UnknownRegistryID(t *testing.T) {
	f := newFixture(t)
	r := f.assigned()
	unknown := profileEntity.EventDirectorID(uuid.New())
	f.profiles.On("ResolveEventDirector", mock.Anything, unknown).
		Return(profileEntity.NilProfileID, errors.NewAppError(errors.ErrNotFound, "Event director not found", nil))

	_, appErr := f.svc.AcceptAssignment(context.Background(), r.ID, unknown, f.director.ID)

	requireCode(t, appErr, errors.ErrNotFound)
}

func TestHostingRequestService_EDResponse_CallerMustOwnRegistryEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.assigned()

	_, appErr := f.svc.AcceptAssignment(ctx, r.ID, f.directorRegistry, f.requestor.ID)
	requireCode(t, appErr, errors.ErrForbidden)

	_, appErr = f.svc.RejectAssignment(ctx, r.ID, f.directorRegistry, f.admin.ID, "not mine to decline")
	requireCode(t, appErr, errors.ErrForbidden)

	assert.Equal(t, r, f.repo.get(r.ID))
	assert.Empty(t, f.notifier.sent)
}

func TestHostingRequestService_RejectAssignment(t *testing.T) {
	f := newFixture(t)
	r := f.assigned()

	updated, appErr := f.svc.RejectAssignment(context.Background(), r.ID, f.directorRegistry, f.director.ID, "  scheduling conflict  ")
	require.Nil(t, appErr)

	assert.Equal(t, entity.StatusEDRejected, updated.Status)
	assert.Equal(t, entity.EDStatusRejectedToAdmin, *updated.EDStatus)
	assert.Equal(t, "scheduling conflict", *updated.EDRejectionReason)
	assert.Equal(t, f.director.ID, *updated.AssignedEventDirectorID)

	sent := f.notifier.to(f.admin.ID)
	require.Len(t, sent, 1)
	assert.Equal(t, "Event Director Declined Assignment", sent[0].Title)
	assert.Contains(t, sent[0].Message, "Reason: scheduling conflict")
	assert.Empty(t, f.notifier.to(f.requestor.ID))
}

func TestHostingRequestService_RejectAssignment_BlankReason(t *testing.T) {
	f := newFixture(t)
	r := f.assigned()

	_, appErr := f.svc.RejectAssignment(context.Background(), r.ID, f.directorRegistry, f.director.ID, "   ")

	requireCode(t, appErr, errors.ErrInvalidState)
	assert.Equal(t, entity.StatusAssignedToED, f.repo.get(r.ID).Status)
}

func TestHostingRequestService_DirectorRespondsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.assigned()

	_, appErr := f.svc.AcceptAssignment(ctx, r.ID, f.directorRegistry, f.director.ID)
	require.Nil(t, appErr)

	_, appErr = f.svc.RejectAssignment(ctx, r.ID, f.directorRegistry, f.director.ID, "changed my mind")
	requireCode(t, appErr, errors.ErrInvalidState)
	_, appErr = f.svc.AcceptAssignment(ctx, r.ID, f.directorRegistry, f.director.ID)
	requireCode(t, appErr, errors.ErrInvalidState)

	assert.Equal(t, entity.StatusEDAccepted, f.repo.get(r.ID).Status)
}
