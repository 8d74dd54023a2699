package standups

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/dbx"
	"github.com/dmitrijs2005/standup/internal/models"
)

// PostgresRepository keeps entries in the standups table. Tags and projects
// are stored as JSONB arrays.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Entry, error) {
	query := `SELECT id, text, date, tags, projects FROM standups
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
		`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Entry{}
	for rows.Next() {
		var (
			e              models.Entry
			tags, projects []byte
		)
		if err := rows.Scan(&e.ID, &e.Text, &e.Date, &tags, &projects); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		if e.Tags, err = decodeLabels(tags); err != nil {
			return nil, err
		}
		if e.Projects, err = decodeLabels(projects); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, e models.Entry) error {
	tags, projects, err := encodeLabels(e.Tags, e.Projects)
	if err != nil {
		return err
	}

	query := `INSERT INTO standups (user_id, id, text, date, tags, projects)
		VALUES ($1, $2, $3, $4, $5, $6)
		`
	if _, err := r.db.ExecContext(ctx, query, userID, e.ID, e.Text, e.Date.UTC(), tags, projects); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Patch replaces text and labels of an existing entry. The date is never
// touched. Returns common.ErrorNotFound when the entry does not exist.
func (r *PostgresRepository) Patch(ctx context.Context, userID, id string, f models.Fields) error {
	f = f.Normalize()
	tags, projects, err := encodeLabels(f.Tags, f.Projects)
	if err != nil {
		return err
	}

	query := `UPDATE standups SET text = $3, tags = $4, projects = $5, updated_at = now()
		WHERE user_id = $1 AND id = $2
		`
	res, err := r.db.ExecContext(ctx, query, userID, id, f.Text, tags, projects)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes the entry. Deleting a missing entry is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM standups WHERE user_id = $1 AND id = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func encodeLabels(tags, projects []string) ([]byte, []byte, error) {
	t, err := json.Marshal(models.NormalizeLabels(tags))
	if err != nil {
		return nil, nil, fmt.Errorf("marshal tags: %w", err)
	}
	p, err := json.Marshal(models.NormalizeLabels(projects))
	if err != nil {
		return nil, nil, fmt.Errorf("marshal projects: %w", err)
	}
	return t, p, nil
}

func decodeLabels(raw []byte) ([]string, error) {
	var labels []string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &labels); err != nil {
			return nil, fmt.Errorf("decode labels: %w", err)
		}
	}
	return models.NormalizeLabels(labels), nil
}
