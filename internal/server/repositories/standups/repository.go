package standups

import (
	"context"

	"github.com/dmitrijs2005/standup/internal/models"
)

// Repository stores the standup entries of each user. Every operation is
// scoped by userID; a user never sees or touches another user's rows.
type Repository interface {
	List(ctx context.Context, userID string) ([]models.Entry, error)
	Create(ctx context.Context, userID string, e models.Entry) error
	Patch(ctx context.Context, userID, id string, f models.Fields) error
	Delete(ctx context.Context, userID, id string) error
}
