package exports

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/standup/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQuery = `(?s)^INSERT\s+INTO\s+exports\s*\(user_id,\s*file_name,\s*storage_key\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQuery).
		WithArgs("u1", "standup.csv", "users/u1/exports/abc-standup.csv").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("x1", created))

	e := &models.Export{UserID: "u1", FileName: "standup.csv", StorageKey: "users/u1/exports/abc-standup.csv"}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != "x1" || !e.CreatedAt.Equal(created) {
		t.Fatalf("id/created_at not filled: %+v", e)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("u1", "f", "k").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.Export{UserID: "u1", FileName: "f", StorageKey: "k"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

const listQuery = `(?s)^SELECT\s+id,\s*user_id,\s*file_name,\s*storage_key,\s*created_at\s+from\s+exports\s+WHERE\s+user_id=\$1\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$2\s*$`

func TestListByUser_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "file_name", "storage_key", "created_at"}).
		AddRow("x2", "u1", "b.md", "k2", now).
		AddRow("x1", "u1", "a.csv", "k1", now.Add(-time.Hour))
	mock.ExpectQuery(listQuery).WithArgs("u1", 10).WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "x2" || got[1].FileName != "a.csv" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestListByUser_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WithArgs("u1", 5).WillReturnError(errors.New("boom"))

	_, err := repo.ListByUser(context.Background(), "u1", 5)
	if err == nil || !regexp.MustCompile(`failed to select exports: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestListByUser_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "file_name", "storage_key", "created_at"}).
		AddRow("x1", "u1", "a", "k", "not-a-time")
	mock.ExpectQuery(listQuery).WithArgs("u1", 1).WillReturnRows(rows)

	if _, err := repo.ListByUser(context.Background(), "u1", 1); err == nil {
		t.Fatal("expected scan error")
	}
}
