package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/standup/internal/client/client"
	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/dmitrijs2005/standup/internal/models"
	"github.com/sethvargo/go-retry"
)

// RemoteAPI is the part of the server client the remote store uses.
type RemoteAPI interface {
	CreateEntry(ctx context.Context, userID string, e models.Entry) (models.Entry, error)
	PatchEntry(ctx context.Context, userID, id string, f models.Fields) error
	RemoveEntry(ctx context.Context, userID, id string) error
	Subscribe(ctx context.Context, userID string) (client.SnapshotStream, error)
}

// Remote is the server-side collection of one signed-in user.
type Remote struct {
	api         RemoteAPI
	userID      string
	logger      logging.Logger
	backoff     func() retry.Backoff
	stableAfter time.Duration
}

// DefaultStableAfter is how long a stream must stay up before a later break
// restarts the backoff schedule from its first step.
const DefaultStableAfter = 30 * time.Second

// DefaultBackoff is the resubscription schedule: exponential from 500ms,
// capped at 30s per attempt.
func DefaultBackoff() retry.Backoff {
	return retry.WithCappedDuration(30*time.Second, retry.NewExponential(500*time.Millisecond))
}

func NewRemote(api RemoteAPI, userID string, l logging.Logger) *Remote {
	return &Remote{
		api:         api,
		userID:      userID,
		logger:      l.With("module", "remote_store", "user_id", userID),
		backoff:     DefaultBackoff,
		stableAfter: DefaultStableAfter,
	}
}

func (r *Remote) UserID() string { return r.userID }

// Subscribe follows the live snapshot stream in a goroutine. A broken
// stream is reported to onError and reopened with backoff; the caller keeps
// whatever snapshot it last received. The disposer stops delivery.
func (r *Remote) Subscribe(ctx context.Context, onSnapshot func([]models.Entry), onError func(error)) func() {
	ctx, cancel := context.WithCancel(ctx)
	go r.run(ctx, onSnapshot, onError)
	return cancel
}

func (r *Remote) run(ctx context.Context, onSnapshot func([]models.Entry), onError func(error)) {
	report := func(err error) {
		if ctx.Err() != nil {
			return
		}
		r.logger.Warn(ctx, "snapshot stream failed", "error", err)
		if onError != nil {
			onError(err)
		}
	}

	b := r.backoff()
	wait := func() bool {
		d, stop := b.Next()
		if stop {
			r.logger.Error(ctx, "giving up on snapshot stream")
			return false
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
			return true
		}
	}

	for ctx.Err() == nil {
		stream, err := r.api.Subscribe(ctx, r.userID)
		if err != nil {
			report(err)
			if !wait() {
				return
			}
			continue
		}

		opened := time.Now()
		delivered := false
		for {
			entries, err := stream.Recv()
			if err != nil {
				report(err)
				break
			}
			if ctx.Err() != nil {
				return
			}
			delivered = true
			onSnapshot(entries)
		}

		// A stream that stayed up and delivered starts the schedule over.
		if delivered && time.Since(opened) >= r.stableAfter {
			b = r.backoff()
		}
		if !wait() {
			return
		}
	}
}

func (r *Remote) Create(ctx context.Context, e models.Entry) (models.Entry, error) {
	e.Tags = models.NormalizeLabels(e.Tags)
	e.Projects = models.NormalizeLabels(e.Projects)
	return r.api.CreateEntry(ctx, r.userID, e)
}

func (r *Remote) Patch(ctx context.Context, id string, f models.Fields) error {
	return r.api.PatchEntry(ctx, r.userID, id, f.Normalize())
}

func (r *Remote) Remove(ctx context.Context, id string) error {
	return r.api.RemoveEntry(ctx, r.userID, id)
}
