// Package models defines server-side records persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
)

// User is an account created on first sign-in with an identity provider.
// (Provider, Subject) is unique.
type User struct {
	ID          string
	Provider    string
	Subject     string
	DisplayName string
	Email       string
	PhotoURL    string
	CreatedAt   time.Time
}

// Identity returns the public identity reported back to clients.
func (u *User) Identity() models.Identity {
	return models.Identity{ID: u.ID, DisplayName: u.DisplayName, Email: u.Email, PhotoURL: u.PhotoURL}
}
