// Package services contains the CLI's application services: the entry sync
// facade that routes reads and writes to the local or remote store, and the
// identity session.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/standup/internal/client/store"
	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/dmitrijs2005/standup/internal/models"
)

// BackendKind names the store currently authoritative for entries.
type BackendKind string

const (
	BackendLocal  BackendKind = "local"
	BackendRemote BackendKind = "remote"
)

// SelectBackend picks the remote store only for a signed-in identity with a
// reachable server.
func SelectBackend(identity *models.Identity, reachable bool) BackendKind {
	if identity != nil && identity.ID != "" && reachable {
		return BackendRemote
	}
	return BackendLocal
}

// RemoteFactory builds the remote store for one user.
type RemoteFactory func(userID string) store.Backend

// EntryService is one CRUD+subscribe contract over whichever store is
// active.
//
// Contract:
//   - List returns the latest snapshot in backend order.
//   - Add rejects blank text with common.ErrEmptyText.
//   - Update keeps the entry's date and returns common.ErrorNotFound for an
//     unknown id. Delete of an unknown id is a no-op.
//   - Every mutation returns the backend's error.
//   - Subscribe calls fn with the current snapshot, then on every change.
//   - SetIdentity / SetReachable re-run SelectBackend and switch stores when
//     the result changes. Entries are never copied between stores.
type EntryService interface {
	Start(ctx context.Context)
	Close()
	List() []models.Entry
	Add(ctx context.Context, text string, tags, projects []string) (models.Entry, error)
	Update(ctx context.Context, id, text string, tags, projects []string) error
	Delete(ctx context.Context, id string) error
	Subscribe(fn func([]models.Entry)) (dispose func())
	SetIdentity(identity *models.Identity)
	SetReachable(reachable bool)
	Backend() BackendKind
	StreamErr() error
}

type entryService struct {
	local     store.Backend
	newRemote RemoteFactory
	logger    logging.Logger
	now       func() time.Time

	switchMu sync.Mutex

	mu         sync.Mutex
	ctx        context.Context
	started    bool
	identity   *models.Identity
	reachable  bool
	kind       BackendKind
	remoteUser string
	active     store.Backend
	dispose    func()
	gen        int
	snapshot   []models.Entry
	streamErr  error
	listeners  map[int]func([]models.Entry)
	nextID     int
}

func NewEntryService(local store.Backend, newRemote RemoteFactory, l logging.Logger) EntryService {
	return &entryService{
		local:     local,
		newRemote: newRemote,
		logger:    l.With("module", "entry_service"),
		now:       time.Now,
		kind:      BackendLocal,
		active:    local,
		snapshot:  []models.Entry{},
		listeners: map[int]func([]models.Entry){},
	}
}

// Start subscribes to the selected store. Subscriptions live until ctx is
// done or Close is called.
func (s *entryService) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.started = true
	s.mu.Unlock()

	s.reselect(true)
}

func (s *entryService) Close() {
	s.mu.Lock()
	d := s.dispose
	s.dispose = nil
	s.gen++
	s.mu.Unlock()

	if d != nil {
		d()
	}
}

func (s *entryService) SetIdentity(identity *models.Identity) {
	s.mu.Lock()
	if identity != nil {
		id := *identity
		identity = &id
	}
	s.identity = identity
	s.mu.Unlock()

	s.reselect(false)
}

func (s *entryService) SetReachable(reachable bool) {
	s.mu.Lock()
	s.reachable = reachable
	s.mu.Unlock()

	s.reselect(false)
}

func (s *entryService) Backend() BackendKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

// StreamErr is the last subscription failure of the active store, cleared by
// the next snapshot.
func (s *entryService) StreamErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streamErr
}

// reselect swaps the active store when SelectBackend's answer (or the remote
// user) changed. The old subscription is disposed before the new one starts.
func (s *entryService) reselect(force bool) {
	s.switchMu.Lock()
	defer s.switchMu.Unlock()

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	kind := SelectBackend(s.identity, s.reachable)
	user := ""
	if kind == BackendRemote {
		user = s.identity.ID
	}
	if !force && kind == s.kind && user == s.remoteUser {
		s.mu.Unlock()
		return
	}

	old := s.dispose
	s.dispose = nil
	s.gen++
	gen := s.gen

	backend := s.local
	if kind == BackendRemote {
		backend = s.newRemote(user)
	}
	prev := s.kind
	s.kind, s.remoteUser, s.active = kind, user, backend
	s.snapshot = []models.Entry{}
	s.streamErr = nil
	ctx := s.ctx
	s.mu.Unlock()

	if old != nil {
		old()
	}
	if prev != kind {
		s.logger.Info(ctx, "entry backend switched", "from", string(prev), "to", string(kind))
	}
	s.publish(gen)

	d := backend.Subscribe(ctx,
		func(entries []models.Entry) { s.onSnapshot(gen, entries) },
		func(err error) { s.onStreamError(gen, err) },
	)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		d()
		return
	}
	s.dispose = d
	s.mu.Unlock()
}

func (s *entryService) onSnapshot(gen int, entries []models.Entry) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	s.snapshot = entries
	s.streamErr = nil
	s.mu.Unlock()

	s.publish(gen)
}

func (s *entryService) onStreamError(gen int, err error) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.streamErr = err
	ctx := s.ctx
	s.mu.Unlock()

	s.logger.Warn(ctx, "entry subscription failed, keeping last snapshot", "error", err)
}

// publish fans the current snapshot out to listeners, each getting its own copy.
func (s *entryService) publish(gen int) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	snap := s.snapshot
	fns := make([]func([]models.Entry), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(cloneEntries(snap))
	}
}

func (s *entryService) List() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEntries(s.snapshot)
}

func (s *entryService) Subscribe(fn func([]models.Entry)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	snap := cloneEntries(s.snapshot)
	s.mu.Unlock()

	fn(snap)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *entryService) backend() store.Backend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *entryService) Add(ctx context.Context, text string, tags, projects []string) (models.Entry, error) {
	if strings.TrimSpace(text) == "" {
		return models.Entry{}, common.ErrEmptyText
	}

	e := models.NewEntry("", text, tags, projects, s.now())
	created, err := s.backend().Create(ctx, e)
	if err != nil {
		return models.Entry{}, fmt.Errorf("add entry: %w", err)
	}
	return created, nil
}

// Update overwrites text, tags and projects. The date is preserved.
func (s *entryService) Update(ctx context.Context, id, text string, tags, projects []string) error {
	if strings.TrimSpace(text) == "" {
		return common.ErrEmptyText
	}

	f := models.Fields{Text: text, Tags: tags, Projects: projects}.Normalize()
	if err := s.backend().Patch(ctx, id, f); err != nil {
		return fmt.Errorf("update entry %s: %w", id, err)
	}
	return nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	if err := s.backend().Remove(ctx, id); err != nil {
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	return nil
}

func cloneEntries(in []models.Entry) []models.Entry {
	out := make([]models.Entry, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}
