package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"meca-api/core/errors"
	"meca-api/core/params"
	eventDto "meca-api/modules/event/dto"
	eventEntity "meca-api/modules/event/entity"
	"meca-api/modules/hostingrequest/entity"
	"meca-api/modules/hostingrequest/repository"
	notificationDto "meca-api/modules/notification/dto"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeRepo keeps requests in memory with the same version check as the SQL repository.
type fakeRepo struct {
	mu          sync.Mutex
	rows        map[uuid.UUID]entity.HostingRequest
	countCalls  int
	beforeWrite func(id uuid.UUID)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]entity.HostingRequest{}}
}

func (f *fakeRepo) put(r entity.HostingRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[r.ID] = r
}

func (f *fakeRepo) get(id uuid.UUID) entity.HostingRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id]
}

func (f *fakeRepo) snapshot() map[uuid.UUID]entity.HostingRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uuid.UUID]entity.HostingRequest, len(f.rows))
	for k, v := range f.rows {
		out[k] = v
	}
	return out
}

func (f *fakeRepo) restore(rows map[uuid.UUID]entity.HostingRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = rows
}

func (f *fakeRepo) Create(_ context.Context, req *entity.HostingRequest) (*entity.HostingRequest, error) {
	r := *req
	r.ID = uuid.New()
	r.Version = 1
	f.put(r)
	return &r, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.HostingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.HostingRequest, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeRepo) Update(_ context.Context, req *entity.HostingRequest) (*entity.HostingRequest, error) {
	if f.beforeWrite != nil {
		f.beforeWrite(req.ID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.rows[req.ID]
	if !ok || current.Version != req.Version {
		return nil, repository.ErrVersionConflict
	}
	r := *req
	r.Version++
	f.rows[r.ID] = r
	return &r, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeRepo) Search(_ context.Context, p params.QueryParams) (*entity.PaginatedHostingRequestEntity, error) {
	var items []entity.HostingRequest
	for _, r := range f.snapshot() {
		if p.Status != "" && string(r.Status) != p.Status {
			continue
		}
		if p.Search != "" && !strings.Contains(strings.ToLower(r.EventName), strings.ToLower(p.Search)) {
			continue
		}
		items = append(items, r)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].EventName < items[j].EventName })
	total := len(items)
	start := min(p.Offset(), total)
	end := min(start+p.PageSize, total)
	return &entity.PaginatedHostingRequestEntity{
		Items:      items[start:end],
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (f *fakeRepo) ListByUserID(_ context.Context, userID profileEntity.ProfileID) ([]entity.HostingRequest, error) {
	var out []entity.HostingRequest
	for _, r := range f.snapshot() {
		if r.IsOwnedBy(userID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByEventDirector(_ context.Context, directorID profileEntity.ProfileID, status *entity.RequestStatus) ([]entity.HostingRequest, error) {
	var out []entity.HostingRequest
	for _, r := range f.snapshot() {
		if r.AssignedEventDirectorID == nil || *r.AssignedEventDirectorID != directorID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) CountByStatus(_ context.Context) ([]entity.StatusCount, error) {
	f.mu.Lock()
	f.countCalls++
	f.mu.Unlock()

	byStatus := map[entity.RequestStatus]int{}
	for _, r := range f.snapshot() {
		byStatus[r.Status]++
	}
	out := make([]entity.StatusCount, 0, len(byStatus))
	for status, n := range byStatus {
		out = append(out, entity.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func (f *fakeRepo) CountForEventDirector(_ context.Context, directorID profileEntity.ProfileID) (*entity.EventDirectorCounts, error) {
	var counts entity.EventDirectorCounts
	for _, r := range f.snapshot() {
		if r.AssignedEventDirectorID == nil || *r.AssignedEventDirectorID != directorID {
			continue
		}
		counts.Assigned++
		if r.EDStatus != nil {
			switch *r.EDStatus {
			case entity.EDStatusPendingReview:
				counts.PendingReview++
			case entity.EDStatusAccepted:
				counts.Accepted++
			}
		}
	}
	return &counts, nil
}

type fakeMessages struct {
	mu    sync.Mutex
	items []entity.RequestMessage
	clock time.Time
}

func (f *fakeMessages) Create(_ context.Context, msg *entity.RequestMessage) (*entity.RequestMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := *msg
	m.ID = uuid.New()
	f.clock = f.clock.Add(time.Second)
	m.CreatedAt = f.clock
	f.items = append(f.items, m)
	return &m, nil
}

func (f *fakeMessages) ListByRequest(_ context.Context, requestID uuid.UUID, includePrivate bool) ([]entity.RequestMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.RequestMessage
	for _, m := range f.items {
		if m.RequestID != requestID || (m.IsPrivate && !includePrivate) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMessages) all() []entity.RequestMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.RequestMessage(nil), f.items...)
}

// fakeTx discards every write made by fn when it fails.
type fakeTx struct {
	repo     *fakeRepo
	messages *fakeMessages
}

func (t *fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	rows := t.repo.snapshot()
	t.messages.mu.Lock()
	count := len(t.messages.items)
	t.messages.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.repo.restore(rows)
		t.messages.mu.Lock()
		t.messages.items = t.messages.items[:count]
		t.messages.mu.Unlock()
		return err
	}
	return nil
}

type profilesMock struct {
	mock.Mock
}

func (m *profilesMock) GetByID(ctx context.Context, id profileEntity.ProfileID) (*profileEntity.Profile, *errors.AppError) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*profileEntity.Profile)
	appErr, _ := args.Get(1).(*errors.AppError)
	return p, appErr
}

func (m *profilesMock) ListAdmins(ctx context.Context) ([]profileEntity.Profile, *errors.AppError) {
	args := m.Called(ctx)
	admins, _ := args.Get(0).([]profileEntity.Profile)
	appErr, _ := args.Get(1).(*errors.AppError)
	return admins, appErr
}

func (m *profilesMock) ResolveEventDirector(ctx context.Context, id profileEntity.EventDirectorID) (profileEntity.ProfileID, *errors.AppError) {
	args := m.Called(ctx, id)
	appErr, _ := args.Get(1).(*errors.AppError)
	return args.Get(0).(profileEntity.ProfileID), appErr
}

func (m *profilesMock) ListAvailableEventDirectors(ctx context.Context) ([]profileEntity.Profile, *errors.AppError) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]profileEntity.Profile)
	appErr, _ := args.Get(1).(*errors.AppError)
	return profiles, appErr
}

type eventsMock struct {
	mock.Mock
}

func (m *eventsMock) Create(ctx context.Context, draft *eventDto.EventDraft) (*eventEntity.Event, *errors.AppError) {
	args := m.Called(ctx, draft)
	event, _ := args.Get(0).(*eventEntity.Event)
	appErr, _ := args.Get(1).(*errors.AppError)
	return event, appErr
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notificationDto.CreateNotificationRequest
	err  error
}

func (n *recordingNotifier) Create(_ context.Context, req *notificationDto.CreateNotificationRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, *req)
	return n.err
}

func (n *recordingNotifier) to(userID profileEntity.ProfileID) []notificationDto.CreateNotificationRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notificationDto.CreateNotificationRequest
	for _, s := range n.sent {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = nil
}

type recordingArchiver struct {
	keys []string
}

func (a *recordingArchiver) PutJSON(_ context.Context, key string, _ any) error {
	a.keys = append(a.keys, key)
	return nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) DelByPrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *memCache) Ping(context.Context) error { return nil }

func (c *memCache) Close() error { return nil }

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

var fixedNow = time.Date(2026, 5, 2, 15, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func profile(role profileEntity.Role, first, last string) profileEntity.Profile {
	return profileEntity.Profile{
		ID:        profileEntity.ProfileID(uuid.New()),
		Email:     strings.ToLower(first) + "@meca.test",
		FirstName: strPtr(first),
		LastName:  strPtr(last),
		Role:      role,
	}
}

type fixture struct {
	svc      *HostingRequestService
	repo     *fakeRepo
	messages *fakeMessages
	profiles *profilesMock
	events   *eventsMock
	notifier *recordingNotifier
	archiver *recordingArchiver
	cache    *memCache

	admin     profileEntity.Profile
	admin2    profileEntity.Profile
	director  profileEntity.Profile
	director2 profileEntity.Profile
	member    profileEntity.Profile
	requestor profileEntity.Profile

	directorRegistry  profileEntity.EventDirectorID
	director2Registry profileEntity.EventDirectorID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:              newFakeRepo(),
		messages:          &fakeMessages{clock: fixedNow},
		profiles:          &profilesMock{},
		events:            &eventsMock{},
		notifier:          &recordingNotifier{},
		archiver:          &recordingArchiver{},
		cache:             newMemCache(),
		admin:             profile(profileEntity.RoleAdmin, "Ada", "Admin"),
		admin2:            profile(profileEntity.RoleAdmin, "Bo", "Admin"),
		director:          profile(profileEntity.RoleEventDirector, "Dee", "Director"),
		director2:         profile(profileEntity.RoleEventDirector, "Eli", "Director"),
		member:            profile(profileEntity.RoleUser, "Max", "Member"),
		requestor:         profile(profileEntity.RoleUser, "Riley", "Requestor"),
		directorRegistry:  profileEntity.EventDirectorID(uuid.New()),
		director2Registry: profileEntity.EventDirectorID(uuid.New()),
	}

	for _, p := range []profileEntity.Profile{f.admin, f.admin2, f.director, f.director2, f.member, f.requestor} {
		f.profiles.On("GetByID", mock.Anything, p.ID).Return(&p, nil).Maybe()
	}
	f.profiles.On("ListAdmins", mock.Anything).Return([]profileEntity.Profile{f.admin, f.admin2}, nil).Maybe()
	f.profiles.On("ResolveEventDirector", mock.Anything, f.directorRegistry).Return(f.director.ID, nil).Maybe()
	f.profiles.On("ResolveEventDirector", mock.Anything, f.director2Registry).Return(f.director2.ID, nil).Maybe()

	f.svc = NewHostingRequestService(Dependencies{
		Repo:     f.repo,
		Messages: f.messages,
		Tx:       &fakeTx{repo: f.repo, messages: f.messages},
		Profiles: f.profiles,
		Events:   f.events,
		Notifier: f.notifier,
		Cache:    f.cache,
		Archiver: f.archiver,
		Now:      func() time.Time { return fixedNow },
	})
	return f
}

// seed stores a pending request owned by the fixture's requestor.
func (f *fixture) seed(mods ...func(*entity.HostingRequest)) entity.HostingRequest {
	owner := f.requestor.ID
	r := entity.HostingRequest{
		FirstName:        "Riley",
		LastName:         "Requestor",
		Email:            "riley@meca.test",
		UserID:           &owner,
		EventName:        "Spring Sound Off",
		EventType:        entity.EventType2X,
		EventDescription: "SPL and SQ lanes",
		City:             strPtr("Dayton"),
		State:            strPtr("OH"),
		Country:          "United States",
		Status:           entity.StatusPending,
		Version:          1,
	}
	r.ID = uuid.New()
	for _, mod := range mods {
		mod(&r)
	}
	f.repo.put(r)
	return r
}

func (f *fixture) assigned(mods ...func(*entity.HostingRequest)) entity.HostingRequest {
	director := f.director.ID
	return f.seed(append([]func(*entity.HostingRequest){func(r *entity.HostingRequest) {
		*r = entity.AssignDirector(*r, director, nil, fixedNow)
	}}, mods...)...)
}

func titles(sent []notificationDto.CreateNotificationRequest) []string {
	out := make([]string, 0, len(sent))
	for _, s := range sent {
		out = append(out, s.Title)
	}
	return out
}
