package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"product-catalog/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// minioStore implements BlobStore on top of an S3-compatible object store.
type minioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    zerolog.Logger
}

// NewMinioStore creates a blob store backed by MinIO (or any S3-compatible
// endpoint). The bucket is created on startup if it does not exist yet.
func NewMinioStore(ctx context.Context, cfg config.BlobConfig, logger zerolog.Logger) (BlobStore, error) {
	logger = logger.With().Str("component", "blob-store").Logger()

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blob storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check blob container %q: %w", cfg.Bucket, err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create blob container %q: %w", cfg.Bucket, err)
		}
		logger.Info().Str("bucket", cfg.Bucket).Msg("blob container created")
	}

	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.Bucket).
		Bool("ssl", cfg.UseSSL).
		Msg("blob store initialised")

	return &minioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}, nil
}

// Upload writes data to the bucket and returns the blob's URL.
func (s *minioStore) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		name,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("blob", name).
			Msg("failed to upload blob")
		return "", fmt.Errorf("failed to upload blob %q: %w", name, err)
	}

	url := s.blobURL(name)

	s.logger.Info().
		Str("blob", name).
		Str("url", url).
		Int("size", len(data)).
		Msg("blob uploaded")

	return url, nil
}

// Remove deletes the named blob from the bucket.
func (s *minioStore) Remove(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Error().
			Err(err).
			Str("blob", name).
			Msg("failed to remove blob")
		return fmt.Errorf("failed to remove blob %q: %w", name, err)
	}

	s.logger.Debug().Str("blob", name).Msg("blob removed")

	return nil
}

// blobURL builds the public URL for a blob as
// <scheme>://<storage-host>/<container>/<blobName>. A configured public URL
// takes precedence over the endpoint host, so blobs can be addressed
// through a CDN in front of the store.
func (s *minioStore) blobURL(name string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, name)
	}
	endpoint := s.client.EndpointURL()
	return fmt.Sprintf("%s://%s/%s/%s", endpoint.Scheme, endpoint.Host, s.bucket, name)
}
