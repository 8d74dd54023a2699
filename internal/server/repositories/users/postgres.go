package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/dbx"
	"github.com/dmitrijs2005/standup/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (provider, subject, display_name, email, photo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (provider, subject)
		 DO UPDATE SET display_name = EXCLUDED.display_name, email = EXCLUDED.email, photo_url = EXCLUDED.photo_url
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Provider, user.Subject, user.DisplayName, user.Email, user.PhotoURL).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, provider, subject, display_name, email, photo_url, created_at FROM users
		 WHERE id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Provider, &user.Subject, &user.DisplayName, &user.Email, &user.PhotoURL, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
