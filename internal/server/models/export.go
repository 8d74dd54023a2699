package models

import "time"

// Export records an export file a user was allowed to upload to object
// storage.
type Export struct {
	ID         string
	UserID     string
	FileName   string
	StorageKey string
	CreatedAt  time.Time
}
