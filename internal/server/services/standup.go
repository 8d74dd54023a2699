package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/dmitrijs2005/standup/internal/models"
	"github.com/dmitrijs2005/standup/internal/server/hub"
	"github.com/dmitrijs2005/standup/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// StandupService owns every user's entry collection and notifies live
// subscribers after each successful write.
type StandupService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hub         *hub.Hub
	logger      logging.Logger
	now         func() time.Time
	newID       func() string
}

func NewStandupService(db *sql.DB, m repomanager.RepositoryManager, h *hub.Hub, l logging.Logger) *StandupService {
	return &StandupService{
		db:          db,
		repomanager: m,
		hub:         h,
		logger:      l.With("module", "standup_service"),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

func (s *StandupService) List(ctx context.Context, userID string) ([]models.Entry, error) {
	entries, err := s.repomanager.Standups(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return entries, nil
}

// Create stores e under userID with a server-assigned id. A zero date is
// replaced by the current time.
func (s *StandupService) Create(ctx context.Context, userID string, e models.Entry) (models.Entry, error) {
	if strings.TrimSpace(e.Text) == "" {
		return models.Entry{}, common.ErrEmptyText
	}

	date := e.Date
	if date.IsZero() {
		date = s.now()
	}
	entry := models.NewEntry(s.newID(), e.Text, e.Tags, e.Projects, date.UTC())

	if err := s.repomanager.Standups(s.db).Create(ctx, userID, entry); err != nil {
		return models.Entry{}, fmt.Errorf("error creating entry: %w", err)
	}

	s.hub.Publish(userID)
	return entry, nil
}

// Patch rewrites text and labels of an entry; its date is preserved.
func (s *StandupService) Patch(ctx context.Context, userID, id string, f models.Fields) error {
	if strings.TrimSpace(f.Text) == "" {
		return common.ErrEmptyText
	}

	if err := s.repomanager.Standups(s.db).Patch(ctx, userID, id, f); err != nil {
		return fmt.Errorf("error patching entry: %w", err)
	}

	s.hub.Publish(userID)
	return nil
}

// Remove deletes an entry; a missing entry is not an error.
func (s *StandupService) Remove(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Standups(s.db).Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error removing entry: %w", err)
	}

	s.hub.Publish(userID)
	return nil
}

// Subscribe sends the full entry list of userID to send, then again after
// every change, until ctx is done or send fails. It returns nil when ctx ends.
func (s *StandupService) Subscribe(ctx context.Context, userID string, send func([]models.Entry) error) error {
	changes, cancel := s.hub.Subscribe(userID)
	defer cancel()

	push := func() error {
		entries, err := s.List(ctx, userID)
		if err != nil {
			return err
		}
		return send(entries)
	}

	if err := push(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug(ctx, "subscription closed", "user_id", userID)
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if err := push(); err != nil {
				return err
			}
		}
	}
}
