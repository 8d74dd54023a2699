package services

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/standup/internal/server/config"
	"github.com/dmitrijs2005/standup/internal/server/models"
	"github.com/dmitrijs2005/standup/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// PresignedExport is where a client uploads an export and where it can be
// downloaded from afterwards.
type PresignedExport struct {
	Key         string
	UploadURL   string
	DownloadURL string
}

// ExportService hands out presigned S3 URLs for export files and keeps a
// record of each one.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *ExportService {
	return &ExportService{db: db, repomanager: m, config: config}
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// StorageKey builds a unique object key for an export of userID.
func StorageKey(userID, fileName string) string {
	name := unsafeFileChars.ReplaceAllString(path.Base(strings.TrimSpace(fileName)), "_")
	if name == "" || name == "." || name == "_" {
		name = "export"
	}
	d := time.Now().UTC()
	return fmt.Sprintf("users/%s/exports/%04d%02d%02d-%s-%s", userID, d.Year(), d.Month(), d.Day(), uuid.NewString(), name)
}

func (s *ExportService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *ExportService) validity() time.Duration {
	if s.config.ExportURLValidity > 0 {
		return s.config.ExportURLValidity
	}
	return 15 * time.Minute
}

// Presign returns upload and download URLs for a new export of userID and
// records it.
func (s *ExportService) Presign(ctx context.Context, userID, fileName string) (*PresignedExport, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := StorageKey(userID, fileName)

	put, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.validity()))
	if err != nil {
		return nil, err
	}

	get, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.validity()))
	if err != nil {
		return nil, err
	}

	rec := &models.Export{UserID: userID, FileName: fileName, StorageKey: key}
	if err := s.repomanager.Exports(s.db).Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("error recording export: %w", err)
	}

	return &PresignedExport{Key: key, UploadURL: put.URL, DownloadURL: get.URL}, nil
}

// Page sizes for List. A non-positive limit means DefaultExportListLimit;
// anything above MaxExportListLimit is clamped.
const (
	DefaultExportListLimit = 20
	MaxExportListLimit     = 100
)

// List returns the most recent exports of userID, newest first, each with a
// fresh download URL.
func (s *ExportService) List(ctx context.Context, userID string, limit int) ([]*models.Export, []string, error) {
	switch {
	case limit <= 0:
		limit = DefaultExportListLimit
	case limit > MaxExportListLimit:
		limit = MaxExportListLimit
	}
	records, err := s.repomanager.Exports(s.db).ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing exports: %w", err)
	}
	if len(records) == 0 {
		return records, nil, nil
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	bucket := s.config.S3Bucket
	urls := make([]string, 0, len(records))
	for _, r := range records {
		key := r.StorageKey
		get, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
			Bucket: &bucket,
			Key:    &key,
		}, s3.WithPresignExpires(s.validity()))
		if err != nil {
			return nil, nil, err
		}
		urls = append(urls, get.URL)
	}
	return records, urls, nil
}
