// Package store holds the two interchangeable entry backends: Local, kept in
// the CLI's key/value database, and Remote, kept on the sync server under
// one user's identity.
package store

import (
	"context"

	"github.com/dmitrijs2005/standup/internal/models"
)

// Backend is the capability shared by the local and remote stores.
//
// Subscribe delivers the full entry set on every change until the returned
// disposer is called. onError receives failures that do not end the
// subscription; it may be nil. Mutations report every failure to the caller.
type Backend interface {
	Subscribe(ctx context.Context, onSnapshot func([]models.Entry), onError func(error)) (dispose func())
	Create(ctx context.Context, e models.Entry) (models.Entry, error)
	Patch(ctx context.Context, id string, f models.Fields) error
	Remove(ctx context.Context, id string) error
}

func cloneAll(entries []models.Entry) []models.Entry {
	out := make([]models.Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
