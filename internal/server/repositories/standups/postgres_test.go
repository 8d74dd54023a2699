package standups

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	listQuery   = `(?s)^SELECT\s+id,\s*text,\s*date,\s*tags,\s*projects\s+FROM\s+standups\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+date\s+DESC,\s*id\s+DESC\s*$`
	insertQuery = `(?s)^INSERT\s+INTO\s+standups\s*\(user_id,\s*id,\s*text,\s*date,\s*tags,\s*projects\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
	patchQuery  = `(?s)^UPDATE\s+standups\s+SET\s+text\s*=\s*\$3,\s*tags\s*=\s*\$4,\s*projects\s*=\s*\$5,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2\s*$`
	deleteQuery = `(?s)^DELETE\s+FROM\s+standups\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2\s*$`
)

func TestList_DecodesLabels(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	d1 := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "text", "date", "tags", "projects"}).
		AddRow("2", "shipped", d1, []byte(`["release"]`), []byte(`["api"]`)).
		AddRow("1", "planned", d2, []byte(`[]`), nil)
	mock.ExpectQuery(listQuery).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.List(context.Background(), "u1")
	require.NoError(t, err)

	want := []models.Entry{
		{ID: "2", Text: "shipped", Date: d1, Tags: []string{"release"}, Projects: []string{"api"}},
		{ID: "1", Text: "planned", Date: d2, Tags: []string{}, Projects: []string{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "date", "tags", "projects"}))

	got, err := repo.List(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestList_BadLabels(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "text", "date", "tags", "projects"}).
		AddRow("1", "x", time.Now(), []byte(`{`), []byte(`[]`))
	mock.ExpectQuery(listQuery).WithArgs("u1").WillReturnRows(rows)

	_, err := repo.List(context.Background(), "u1")
	require.ErrorContains(t, err, "decode labels")
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WithArgs("u1").WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), "u1")
	require.ErrorContains(t, err, "db down")
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2024, 5, 2, 9, 0, 0, 0, time.FixedZone("X", 3600))
	mock.ExpectExec(insertQuery).
		WithArgs("u1", "e1", "fixed bug", date.UTC(), []byte(`["bug"]`), []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), "u1", models.Entry{
		ID: "e1", Text: "fixed bug", Date: date, Tags: []string{"bug", "bug"},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQuery).WillReturnError(errors.New("duplicate"))

	err := repo.Create(context.Background(), "u1", models.Entry{ID: "e1", Text: "x", Date: time.Now()})
	require.ErrorContains(t, err, "db error: duplicate")
}

func TestPatch_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(patchQuery).
		WithArgs("u1", "e1", "new text", []byte(`["a"]`), []byte(`["p"]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Patch(context.Background(), "u1", "e1", models.Fields{
		Text: "  new text ", Tags: []string{"a", " "}, Projects: []string{"p"},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatch_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(patchQuery).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Patch(context.Background(), "u1", "missing", models.Fields{Text: "x"})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPatch_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(patchQuery).WillReturnError(errors.New("boom"))

	err := repo.Patch(context.Background(), "u1", "e1", models.Fields{Text: "x"})
	require.ErrorContains(t, err, "boom")
	require.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_MissingIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQuery).WithArgs("u1", "gone").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "u1", "gone"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQuery).WithArgs("u1", "e1").WillReturnError(errors.New("boom"))

	require.ErrorContains(t, repo.Delete(context.Background(), "u1", "e1"), "boom")
}
