package users

import (
	"context"

	"github.com/dmitrijs2005/standup/internal/server/models"
)

type Repository interface {
	// Upsert creates the user for (Provider, Subject) or refreshes its profile,
	// returning the stored row with ID and CreatedAt filled in.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	// GetByID returns common.ErrorNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
