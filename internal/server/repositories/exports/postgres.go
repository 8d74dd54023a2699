package exports

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/standup/internal/dbx"
	"github.com/dmitrijs2005/standup/internal/server/models"
)

// PostgresRepository implements export bookkeeping over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores a new export record and fills ID and CreatedAt.
func (r *PostgresRepository) Create(ctx context.Context, export *models.Export) error {
	query := `
		INSERT INTO exports (user_id, file_name, storage_key)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, export.UserID, export.FileName, export.StorageKey).
		Scan(&export.ID, &export.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns the latest exports of userID, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Export, error) {
	query := ` SELECT id, user_id, file_name, storage_key, created_at from exports
		WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2
		`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select exports: %w", err)
	}
	defer rows.Close()

	var result []*models.Export
	for rows.Next() {
		var item models.Export
		if err := rows.Scan(&item.ID, &item.UserID, &item.FileName, &item.StorageKey, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
