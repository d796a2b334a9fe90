package service

import (
	"context"
	stdErrors "errors"
	"regexp"
	"testing"
	"time"

	"meca-api/core/errors"
	"meca-api/modules/event/dto"
	"meca-api/modules/event/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	args := m.Called(ctx, event)
	if e, ok := args.Get(0).(*entity.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *repoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*entity.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *repoMock) ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID) ([]entity.Event, error) {
	args := m.Called(ctx, directorID)
	if e, ok := args.Get(0).([]entity.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+-[a-z0-9]{7}$`)

func TestCreate_StoresDraftWithSlug(t *testing.T) {
	repo := new(repoMock)
	svc := NewEventService(repo)

	director := profileEntity.ProfileID(uuid.New())
	date := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	draft := &dto.EventDraft{
		Title:           "Spring Sound Off",
		EventDate:       &date,
		VenueName:       "Dayton Fairgrounds",
		VenueCity:       "Dayton",
		EventDirectorID: &director,
	}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.Event) bool {
		return e.Title == "Spring Sound Off" &&
			e.Status == entity.EventStatusPending &&
			e.VenueCity == "Dayton" &&
			*e.EventDirectorID == director &&
			slugPattern.MatchString(e.Slug)
	})).Return(&entity.Event{ID: uuid.New(), Title: "Spring Sound Off", Slug: "spring-sound-off-x1y2z3a"}, nil).Once()

	created, appErr := svc.Create(context.Background(), draft)
	require.Nil(t, appErr)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Contains(t, created.Slug, "spring-sound-off-")
	repo.AssertExpectations(t)
}

func TestCreate_KeepsExplicitStatus(t *testing.T) {
	repo := new(repoMock)
	svc := NewEventService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.Event) bool {
		return e.Status == entity.EventStatusUpcoming
	})).Return(&entity.Event{ID: uuid.New(), Status: entity.EventStatusUpcoming}, nil).Once()

	_, appErr := svc.Create(context.Background(), &dto.EventDraft{Title: "Finals", Status: entity.EventStatusUpcoming})
	require.Nil(t, appErr)
	repo.AssertExpectations(t)
}

func TestCreate_Errors(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		repo := new(repoMock)
		_, appErr := NewEventService(repo).Create(context.Background(), &dto.EventDraft{})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(repoMock)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, stdErrors.New("duplicate slug")).Once()

		_, appErr := NewEventService(repo).Create(context.Background(), &dto.EventDraft{Title: "Finals"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCreateFailed, appErr.Code)
	})
}

func TestGetByID(t *testing.T) {
	repo := new(repoMock)
	svc := NewEventService(repo)

	found := uuid.New()
	missing := uuid.New()
	repo.On("GetByID", mock.Anything, found).Return(&entity.Event{ID: found, Title: "Finals", Status: entity.EventStatusPending}, nil)
	repo.On("GetByID", mock.Anything, missing).Return(nil, nil)

	resp, appErr := svc.GetByID(context.Background(), found)
	require.Nil(t, appErr)
	assert.Equal(t, "Finals", resp.Title)
	assert.Equal(t, "pending", resp.Status)

	_, appErr = svc.GetByID(context.Background(), missing)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestListByEventDirector(t *testing.T) {
	repo := new(repoMock)
	svc := NewEventService(repo)

	director := profileEntity.ProfileID(uuid.New())
	repo.On("ListByEventDirector", mock.Anything, director).Return([]entity.Event{
		{ID: uuid.New(), Title: "Spring Sound Off"},
		{ID: uuid.New(), Title: "Summer Slam"},
	}, nil)

	events, appErr := svc.ListByEventDirector(context.Background(), director)
	require.Nil(t, appErr)
	require.Len(t, events, 2)
	assert.Equal(t, "Summer Slam", events[1].Title)
}

func TestListByEventDirector_Empty(t *testing.T) {
	repo := new(repoMock)
	director := profileEntity.ProfileID(uuid.New())
	repo.On("ListByEventDirector", mock.Anything, director).Return(nil, nil)

	events, appErr := NewEventService(repo).ListByEventDirector(context.Background(), director)
	require.Nil(t, appErr)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestBuildSlug(t *testing.T) {
	tests := []struct {
		title  string
		prefix string
	}{
		{"Spring Sound Off", "spring-sound-off-"},
		{"MECA Finals 2026!", "meca-finals-2026-"},
		{"!!!", "event-"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := buildSlug(tt.title)
			assert.True(t, slugPattern.MatchString(got), got)
			assert.Equal(t, tt.prefix, got[:len(tt.prefix)])
		})
	}
}
