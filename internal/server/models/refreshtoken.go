package models

import "time"

// RefreshToken is a server-stored, single-use token that mints a new
// access token.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is no longer valid at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !t.Expires.After(now)
}
