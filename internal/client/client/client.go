package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
)

// Client is the CLI's view of the sync server.
type Client interface {
	Close() error
	SignIn(ctx context.Context, provider, providerToken string) (*models.Identity, error)
	SignOut(ctx context.Context) error
	SetTokens(access, refresh string)
	Ping(ctx context.Context) error

	CreateEntry(ctx context.Context, userID string, e models.Entry) (models.Entry, error)
	PatchEntry(ctx context.Context, userID, id string, f models.Fields) error
	RemoveEntry(ctx context.Context, userID, id string) error
	Subscribe(ctx context.Context, userID string) (SnapshotStream, error)

	PresignExport(ctx context.Context, userID, fileName string) (*ExportURLs, error)
	ListExports(ctx context.Context, userID string, limit int) ([]ExportFile, error)
}

// SnapshotStream yields full entry snapshots until the stream breaks.
type SnapshotStream interface {
	Recv() ([]models.Entry, error)
}

// ExportURLs is a presigned upload slot for one export file.
type ExportURLs struct {
	Key         string
	UploadURL   string
	DownloadURL string
}

// ExportFile is one previously uploaded export.
type ExportFile struct {
	Key         string
	FileName    string
	CreatedAt   time.Time
	DownloadURL string
}
