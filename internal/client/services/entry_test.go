package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/standup/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/standup/internal/client/store"
	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/dmitrijs2005/standup/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake remote backend ----

type fakeRemote struct {
	mu         sync.Mutex
	userID     string
	entries    []models.Entry
	onSnap     func([]models.Entry)
	onErr      func(error)
	subscribed int
	disposed   int
	created    []models.Entry
	err        error
	events     *[]string
}

func (r *fakeRemote) Subscribe(ctx context.Context, onSnapshot func([]models.Entry), onError func(error)) func() {
	r.mu.Lock()
	r.subscribed++
	r.onSnap, r.onErr = onSnapshot, onError
	if r.events != nil {
		*r.events = append(*r.events, "subscribe:"+r.userID)
	}
	snap := append([]models.Entry{}, r.entries...)
	r.mu.Unlock()

	onSnapshot(snap)
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.disposed++
		if r.events != nil {
			*r.events = append(*r.events, "dispose:"+r.userID)
		}
	}
}

func (r *fakeRemote) push() {
	r.mu.Lock()
	fn := r.onSnap
	snap := append([]models.Entry{}, r.entries...)
	r.mu.Unlock()
	fn(snap)
}

func (r *fakeRemote) fail(err error) {
	r.mu.Lock()
	fn := r.onErr
	r.mu.Unlock()
	fn(err)
}

func (r *fakeRemote) Create(ctx context.Context, e models.Entry) (models.Entry, error) {
	if r.err != nil {
		return models.Entry{}, r.err
	}
	r.mu.Lock()
	e.ID = "srv-" + e.Text
	r.entries = append(r.entries, e)
	r.created = append(r.created, e)
	r.mu.Unlock()
	r.push()
	return e, nil
}

func (r *fakeRemote) Patch(ctx context.Context, id string, f models.Fields) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	i := models.IndexOf(r.entries, id)
	if i < 0 {
		r.mu.Unlock()
		return common.ErrorNotFound
	}
	r.entries[i] = r.entries[i].Apply(f)
	r.mu.Unlock()
	r.push()
	return nil
}

func (r *fakeRemote) Remove(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	if i := models.IndexOf(r.entries, id); i >= 0 {
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
	}
	r.mu.Unlock()
	r.push()
	return nil
}

// ---- helpers ----

type harness struct {
	svc     *entryService
	repo    *metadata.MemoryRepository
	local   *store.Local
	remotes map[string]*fakeRemote
	events  []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{repo: metadata.NewMemoryRepository(), remotes: map[string]*fakeRemote{}}
	h.local = store.NewLocal(h.repo, logging.Nop())
	factory := func(userID string) store.Backend {
		r, ok := h.remotes[userID]
		if !ok {
			r = &fakeRemote{userID: userID, events: &h.events}
			h.remotes[userID] = r
		}
		return r
	}
	h.svc = NewEntryService(h.local, factory, logging.Nop()).(*entryService)
	h.svc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	h.svc.Start(context.Background())
	t.Cleanup(h.svc.Close)
	return h
}

func ids(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

// ---- tests ----

func TestSelectBackend(t *testing.T) {
	u := &models.Identity{ID: "u1"}
	cases := []struct {
		identity  *models.Identity
		reachable bool
		want      BackendKind
	}{
		{nil, false, BackendLocal},
		{nil, true, BackendLocal},
		{u, false, BackendLocal},
		{u, true, BackendRemote},
		{&models.Identity{}, true, BackendLocal},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SelectBackend(c.identity, c.reachable), "%+v %v", c.identity, c.reachable)
	}
}

func TestEntryService_AddThenList(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	e, err := h.svc.Add(ctx, "  shipped the thing  ", []string{"a", "b", "a"}, nil)
	require.NoError(t, err)

	got := h.svc.List()
	require.Len(t, got, 1)
	want := models.Entry{
		ID:       e.ID,
		Text:     "shipped the thing",
		Date:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Tags:     []string{"a", "b"},
		Projects: []string{},
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryService_AddBlankRejected(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Add(context.Background(), "   ", nil, nil)
	require.ErrorIs(t, err, common.ErrEmptyText)
	assert.Empty(t, h.svc.List())
}

func TestEntryService_AddThenDeleteRestores(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, _ = h.svc.Add(ctx, "keep", nil, nil)
	before := h.svc.List()

	e, err := h.svc.Add(ctx, "temp", nil, nil)
	require.NoError(t, err)
	require.NoError(t, h.svc.Delete(ctx, e.ID))

	if diff := cmp.Diff(before, h.svc.List()); diff != "" {
		t.Fatalf("state not restored (-before +after):\n%s", diff)
	}
	require.NoError(t, h.svc.Delete(ctx, "no-such-id"))
}

func TestEntryService_UpdateChangesOnlyTarget(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a, _ := h.svc.Add(ctx, "a", []string{"x"}, []string{"p"})
	b, _ := h.svc.Add(ctx, "b", nil, nil)
	before := h.svc.List()

	require.NoError(t, h.svc.Update(ctx, b.ID, "b2", []string{"t"}, nil))

	after := h.svc.List()
	require.Len(t, after, 2)
	for i := range after {
		if after[i].ID == a.ID {
			assert.Equal(t, before[i], after[i])
			continue
		}
		assert.Equal(t, "b2", after[i].Text)
		assert.Equal(t, []string{"t"}, after[i].Tags)
		assert.True(t, after[i].Date.Equal(b.Date), "date preserved on edit")
	}
}

func TestEntryService_UpdateUnknownAndBlank(t *testing.T) {
	h := newHarness(t)
	err := h.svc.Update(context.Background(), "nope", "x", nil, nil)
	require.ErrorIs(t, err, common.ErrorNotFound)

	err = h.svc.Update(context.Background(), "nope", " ", nil, nil)
	require.ErrorIs(t, err, common.ErrEmptyText)
}

func TestEntryService_SubscribeGetsCurrentAndUpdates(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, _ = h.svc.Add(ctx, "one", nil, nil)

	var got [][]models.Entry
	dispose := h.svc.Subscribe(func(e []models.Entry) { got = append(got, e) })
	_, _ = h.svc.Add(ctx, "two", nil, nil)
	dispose()
	_, _ = h.svc.Add(ctx, "three", nil, nil)

	require.Len(t, got, 2)
	assert.Len(t, got[0], 1)
	assert.Len(t, got[1], 2)
}

func TestEntryService_SignInSwitchesWithoutMigration(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.svc.Add(ctx, "guest note", nil, nil)
	require.NoError(t, err)
	localBefore, _ := h.local.Load(ctx)

	h.svc.SetReachable(true)
	assert.Equal(t, BackendLocal, h.svc.Backend())

	h.svc.SetIdentity(&models.Identity{ID: "u1"})
	require.Equal(t, BackendRemote, h.svc.Backend())
	assert.Empty(t, h.svc.List(), "remote population starts from the remote store")

	r := h.remotes["u1"]
	assert.Empty(t, r.created, "no implicit migration")

	_, err = h.svc.Add(ctx, "work note", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"srv-work note"}, ids(h.svc.List()))

	localAfter, _ := h.local.Load(ctx)
	if diff := cmp.Diff(localBefore, localAfter); diff != "" {
		t.Fatalf("local entries changed by sign-in (-before +after):\n%s", diff)
	}

	h.svc.SetIdentity(nil)
	assert.Equal(t, BackendLocal, h.svc.Backend())
	assert.Equal(t, ids(localBefore), ids(h.svc.List()))
	assert.Equal(t, 1, r.disposed)
}

func TestEntryService_SwitchDisposesBeforeSubscribing(t *testing.T) {
	h := newHarness(t)
	h.svc.SetReachable(true)
	h.svc.SetIdentity(&models.Identity{ID: "u1"})
	h.svc.SetIdentity(&models.Identity{ID: "u2"})

	assert.Equal(t, []string{"subscribe:u1", "dispose:u1", "subscribe:u2"}, h.events)
}

func TestEntryService_UnreachableFallsBackToLocal(t *testing.T) {
	h := newHarness(t)
	h.svc.SetIdentity(&models.Identity{ID: "u1"})
	h.svc.SetReachable(true)
	require.Equal(t, BackendRemote, h.svc.Backend())

	h.svc.SetReachable(false)
	assert.Equal(t, BackendLocal, h.svc.Backend())

	h.svc.SetReachable(true)
	assert.Equal(t, BackendRemote, h.svc.Backend())
	assert.Equal(t, 2, h.remotes["u1"].subscribed)
}

func TestEntryService_StreamFailureKeepsSnapshot(t *testing.T) {
	h := newHarness(t)
	h.svc.SetReachable(true)
	h.svc.SetIdentity(&models.Identity{ID: "u1"})
	r := h.remotes["u1"]

	_, err := h.svc.Add(context.Background(), "x", nil, nil)
	require.NoError(t, err)

	boom := errors.New("stream reset")
	r.fail(boom)

	assert.Len(t, h.svc.List(), 1)
	assert.ErrorIs(t, h.svc.StreamErr(), boom)

	r.push()
	assert.NoError(t, h.svc.StreamErr())
}

func TestEntryService_RemoteWriteErrorsSurface(t *testing.T) {
	h := newHarness(t)
	h.svc.SetReachable(true)
	h.svc.SetIdentity(&models.Identity{ID: "u1"})
	h.remotes["u1"].err = errors.New("unavailable")
	ctx := context.Background()

	_, err := h.svc.Add(ctx, "x", nil, nil)
	assert.Error(t, err)
	assert.Error(t, h.svc.Update(ctx, "e", "x", nil, nil))
	assert.Error(t, h.svc.Delete(ctx, "e"))
}

func TestEntryService_StaleSnapshotsDropped(t *testing.T) {
	h := newHarness(t)
	h.svc.SetReachable(true)
	h.svc.SetIdentity(&models.Identity{ID: "u1"})
	old := h.remotes["u1"]
	old.entries = []models.Entry{{ID: "stale"}}

	h.svc.SetIdentity(nil)
	old.push()

	assert.NotContains(t, ids(h.svc.List()), "stale")
}
