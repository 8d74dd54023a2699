package export

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/standup/internal/client/client"
	"github.com/dmitrijs2005/standup/internal/netx"
)

// Presigner hands out presigned upload slots.
type Presigner interface {
	PresignExport(ctx context.Context, userID, fileName string) (*client.ExportURLs, error)
}

type Uploader struct {
	presigner  Presigner
	httpClient *http.Client
}

func NewUploader(p Presigner, httpClient *http.Client) *Uploader {
	return &Uploader{presigner: p, httpClient: httpClient}
}

// Upload stores data under fileName for userID and returns a download link.
func (u *Uploader) Upload(ctx context.Context, userID, fileName, contentType string, data []byte) (string, error) {
	urls, err := u.presigner.PresignExport(ctx, userID, fileName)
	if err != nil {
		return "", fmt.Errorf("presign export: %w", err)
	}
	if err := netx.UploadToPresignedURL(ctx, u.httpClient, urls.UploadURL, contentType, data); err != nil {
		return "", err
	}
	return urls.DownloadURL, nil
}
