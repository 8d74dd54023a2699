package exports

import (
	"context"

	"github.com/dmitrijs2005/standup/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, export *models.Export) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Export, error)
}
