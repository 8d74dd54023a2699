package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE refresh_tokens (token TEXT PRIMARY KEY, user_id TEXT NOT NULL);
CREATE TABLE standups (id TEXT PRIMARY KEY, user_id TEXT NOT NULL, text TEXT NOT NULL);
`

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func tokensOf(t *testing.T, db *sql.DB, userID string) []string {
	t.Helper()
	rows, err := db.Query(`SELECT token FROM refresh_tokens WHERE user_id = ? ORDER BY token`, userID)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var tok string
		require.NoError(t, rows.Scan(&tok))
		out = append(out, tok)
	}
	require.NoError(t, rows.Err())
	return out
}

// rotate swaps old for next the way the user service rotates refresh tokens.
func rotate(old, next string, fail error) func(ctx context.Context, tx DBTX) error {
	return func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = ?`, old); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO refresh_tokens (token, user_id) VALUES (?, 'u1')`, next); err != nil {
			return err
		}
		return fail
	}
}

func TestWithTx_RotationCommits(t *testing.T) {
	db := openDB(t)
	_, err := db.Exec(`INSERT INTO refresh_tokens (token, user_id) VALUES ('r0', 'u1')`)
	require.NoError(t, err)

	require.NoError(t, WithTx(context.Background(), db, nil, rotate("r0", "r1", nil)))
	assert.Equal(t, []string{"r1"}, tokensOf(t, db, "u1"))
}

func TestWithTx_FailedRotationKeepsOldToken(t *testing.T) {
	db := openDB(t)
	_, err := db.Exec(`INSERT INTO refresh_tokens (token, user_id) VALUES ('r0', 'u1')`)
	require.NoError(t, err)

	boom := errors.New("signing failed")
	err = WithTx(context.Background(), db, nil, rotate("r0", "r1", boom))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"r0"}, tokensOf(t, db, "u1"))
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := openDB(t)

	defer func() {
		r := recover()
		require.Equal(t, "handler crashed", r)

		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM standups`).Scan(&n))
		assert.Zero(t, n)
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO standups (id, user_id, text) VALUES ('e1', 'u1', 'wrote tests')`)
		require.NoError(t, err)
		panic("handler crashed")
	})
}

func TestWithTx_BeginFailsOnClosedDB(t *testing.T) {
	db := openDB(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
