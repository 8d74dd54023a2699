package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/standup/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/dmitrijs2005/standup/internal/models"
)

// Local keeps the whole entry list as one JSON array under
// metadata.KeyEntries. Every mutation rewrites the list.
type Local struct {
	repo   metadata.Repository
	logger logging.Logger
	now    func() time.Time

	mu        sync.Mutex
	listeners map[int]func([]models.Entry)
	nextID    int
}

func NewLocal(repo metadata.Repository, l logging.Logger) *Local {
	return &Local{
		repo:      repo,
		logger:    l.With("module", "local_store"),
		now:       time.Now,
		listeners: map[int]func([]models.Entry){},
	}
}

// Load returns the stored entries. An absent or malformed slot yields an
// empty list; only a storage failure is an error.
func (s *Local) Load(ctx context.Context) ([]models.Entry, error) {
	raw, err := s.repo.Get(ctx, metadata.KeyEntries)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.Entry{}, nil
	}

	var entries []models.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn(ctx, "malformed local entries, treating as empty", "error", err)
		return []models.Entry{}, nil
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	for i := range entries {
		entries[i].Tags = models.NormalizeLabels(entries[i].Tags)
		entries[i].Projects = models.NormalizeLabels(entries[i].Projects)
	}
	return entries, nil
}

// Save rewrites the whole list.
func (s *Local) Save(ctx context.Context, entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return s.repo.Set(ctx, metadata.KeyEntries, raw)
}

// Subscribe emits the stored list once, then after each write made through
// this store. Changes made by other processes are not observed.
func (s *Local) Subscribe(ctx context.Context, onSnapshot func([]models.Entry), onError func(error)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = onSnapshot
	s.mu.Unlock()

	entries, err := s.Load(ctx)
	if err != nil {
		if onError != nil {
			onError(err)
		}
		entries = []models.Entry{}
	}
	onSnapshot(entries)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Local) emit(entries []models.Entry) {
	s.mu.Lock()
	fns := make([]func([]models.Entry), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(cloneAll(entries))
	}
}

// mutate runs fn over the stored list under the store lock, saves the result
// and notifies listeners.
func (s *Local) mutate(ctx context.Context, fn func([]models.Entry) ([]models.Entry, error)) error {
	s.mu.Lock()
	entries, err := s.Load(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	out, err := fn(entries)
	if err == nil {
		err = s.Save(ctx, out)
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.emit(out)
	return nil
}

// Create prepends e. A missing id becomes the current Unix-millisecond
// timestamp, bumped until it is unique.
func (s *Local) Create(ctx context.Context, e models.Entry) (models.Entry, error) {
	e = e.Clone()
	err := s.mutate(ctx, func(entries []models.Entry) ([]models.Entry, error) {
		if e.ID == "" {
			e.ID = uniqueID(entries, s.now().UnixMilli())
		} else if models.IndexOf(entries, e.ID) >= 0 {
			return nil, fmt.Errorf("entry %s already exists", e.ID)
		}
		return append([]models.Entry{e}, entries...), nil
	})
	if err != nil {
		return models.Entry{}, err
	}
	return e, nil
}

func uniqueID(entries []models.Entry, ms int64) string {
	for {
		id := strconv.FormatInt(ms, 10)
		if models.IndexOf(entries, id) < 0 {
			return id
		}
		ms++
	}
}

func (s *Local) Patch(ctx context.Context, id string, f models.Fields) error {
	return s.mutate(ctx, func(entries []models.Entry) ([]models.Entry, error) {
		i := models.IndexOf(entries, id)
		if i < 0 {
			return nil, fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
		}
		entries[i] = entries[i].Apply(f)
		return entries, nil
	})
}

// Remove deletes the entry; an unknown id is a no-op.
func (s *Local) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, func(entries []models.Entry) ([]models.Entry, error) {
		i := models.IndexOf(entries, id)
		if i < 0 {
			return entries, nil
		}
		return append(entries[:i], entries[i+1:]...), nil
	})
}
