package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/dbx"
	"github.com/dmitrijs2005/standup/internal/models"
	smodels "github.com/dmitrijs2005/standup/internal/server/models"
	"github.com/dmitrijs2005/standup/internal/server/repositories/exports"
	refreshtokensrepo "github.com/dmitrijs2005/standup/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/standup/internal/server/repositories/standups"
	usersrepo "github.com/dmitrijs2005/standup/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	upsertIn  *smodels.User
	upsertErr error
	getOut    *smodels.User
	getErr    error
}

func (f *fakeUsersRepo) Upsert(_ context.Context, u *smodels.User) (*smodels.User, error) {
	f.upsertIn = u
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	out := *u
	out.ID = "user-" + u.Subject
	return &out, nil
}

func (f *fakeUsersRepo) GetByID(context.Context, string) (*smodels.User, error) {
	return f.getOut, f.getErr
}

type fakeRefreshRepo struct {
	findOut   *smodels.RefreshToken
	findErr   error
	delErr    error
	createErr error
	purged    int64

	created []string
	deleted []string
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, _ time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, userID+":"+token)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*smodels.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

func (f *fakeRefreshRepo) DeleteExpired(context.Context, time.Time) (int64, error) {
	return f.purged, f.delErr
}

// memStandups is an in-memory standups.Repository.
type memStandups struct {
	mu       sync.Mutex
	rows     map[string][]models.Entry
	listErr  error
	writeErr error
}

func newMemStandups() *memStandups {
	return &memStandups{rows: map[string][]models.Entry{}}
}

func (m *memStandups) List(_ context.Context, userID string) ([]models.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Entry, len(m.rows[userID]))
	copy(out, m.rows[userID])
	return out, nil
}

func (m *memStandups) Create(_ context.Context, userID string, e models.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.rows[userID] = append([]models.Entry{e}, m.rows[userID]...)
	return nil
}

func (m *memStandups) Patch(_ context.Context, userID, id string, f models.Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	i := models.IndexOf(m.rows[userID], id)
	if i < 0 {
		return common.ErrorNotFound
	}
	m.rows[userID][i] = m.rows[userID][i].Apply(f)
	return nil
}

func (m *memStandups) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if i := models.IndexOf(m.rows[userID], id); i >= 0 {
		m.rows[userID] = append(m.rows[userID][:i], m.rows[userID][i+1:]...)
	}
	return nil
}

type fakeExportsRepo struct {
	created   []*smodels.Export
	createErr error
	list      []*smodels.Export
	listErr   error
	lastLimit int
}

func (f *fakeExportsRepo) Create(_ context.Context, e *smodels.Export) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = "x1"
	f.created = append(f.created, e)
	return nil
}

func (f *fakeExportsRepo) ListByUser(_ context.Context, _ string, limit int) ([]*smodels.Export, error) {
	f.lastLimit = limit
	return f.list, f.listErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	s *memStandups
	e *fakeExportsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error        { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Standups(dbx.DBTX) standups.Repository               { return m.s }
func (m *fakeRepoManager) Exports(dbx.DBTX) exports.Repository                 { return m.e }
