package metadata

import (
	"context"
)

// Keys of the local key/value slots.
const (
	KeyEntries      = "standupEntries"
	KeyGuestMode    = "guestMode"
	KeyIdentity     = "session.identity"
	KeyAccessToken  = "session.access_token"
	KeyRefreshToken = "session.refresh_token"
)

// Repository is the injectable local persistence handle. Get returns
// (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string, more ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
