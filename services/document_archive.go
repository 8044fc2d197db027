package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/kendall-kelly/blinds-quote-api/config"
)

// DocumentArchive keeps copies of rendered quote documents
type DocumentArchive interface {
	// Store uploads a document and returns its key
	Store(ctx context.Context, quoteID, filename string, data []byte) (string, error)
	// PresignedURL returns a temporary download link for a stored key
	PresignedURL(ctx context.Context, key string) (string, error)
	// DeleteQuote removes every stored document of a quote
	DeleteQuote(ctx context.Context, quoteID string) error
}

// ArchiveKey is the object key of a quote document
func ArchiveKey(quoteID, filename string) string {
	return path.Join("quotes", quoteID, filename)
}

// S3DocumentArchive stores documents in an S3 bucket
type S3DocumentArchive struct {
	client *s3.Client
	bucket string
}

var documentArchiveInstance DocumentArchive

// InitDocumentArchive creates the S3 archive from the application config
func InitDocumentArchive(ctx context.Context, cfg *appConfig.Config) (DocumentArchive, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	documentArchiveInstance = &S3DocumentArchive{
		client: s3.NewFromConfig(awsConfig),
		bucket: cfg.AWSS3Bucket,
	}
	return documentArchiveInstance, nil
}

// GetDocumentArchive returns the configured archive, or nil when archiving is off
func GetDocumentArchive() DocumentArchive {
	return documentArchiveInstance
}

// SetDocumentArchive sets the archive instance (primarily for testing)
func SetDocumentArchive(archive DocumentArchive) {
	documentArchiveInstance = archive
}

// Store implements DocumentArchive
func (a *S3DocumentArchive) Store(ctx context.Context, quoteID, filename string, data []byte) (string, error) {
	key := ArchiveKey(quoteID, filename)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}
	return key, nil
}

// PresignedURL implements DocumentArchive. Links expire after one hour.
func (a *S3DocumentArchive) PresignedURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	presignClient := s3.NewPresignClient(a.client)
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return request.URL, nil
}

// DeleteQuote implements DocumentArchive
func (a *S3DocumentArchive) DeleteQuote(ctx context.Context, quoteID string) error {
	prefix := ArchiveKey(quoteID, "") + "/"

	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list archived documents: %w", err)
		}
		for _, obj := range page.Contents {
			if _, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(a.bucket),
				Key:    obj.Key,
			}); err != nil {
				return fmt.Errorf("failed to delete %s from S3: %w", aws.ToString(obj.Key), err)
			}
		}
	}
	return nil
}

// ArchiveDocuments stores rendered documents when an archive is configured
// and returns a download link per filename. Archive failures are logged and
// never fail the request.
func ArchiveDocuments(ctx context.Context, archive DocumentArchive, quoteID string, docs ...RenderedDocument) map[string]string {
	if archive == nil {
		return nil
	}
	links := make(map[string]string, len(docs))
	for _, doc := range docs {
		key, err := archive.Store(ctx, quoteID, doc.Filename, doc.Data)
		if err != nil {
			slog.WarnContext(ctx, "failed to archive quote document", "quote_id", quoteID, "filename", doc.Filename, "error", err)
			continue
		}
		url, err := archive.PresignedURL(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "failed to presign archived document", "key", key, "error", err)
			continue
		}
		links[doc.Filename] = url
	}
	return links
}
