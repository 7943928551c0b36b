package storage

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"ramillete/internal/pkg/config"
	"ramillete/internal/pkg/errs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStorage stores uploaded images in a minio bucket and hands back the
// public URL clients embed in offerings.
type ImageStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string

	mu          sync.Mutex
	bucketReady bool
}

func NewImageStorage(cfg config.MinIOConfig) (*ImageStorage, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create minio client")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return &ImageStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket),
	}, nil
}

// ensureBucket runs on the first upload rather than at construction so the
// server starts even when minio is temporarily unreachable.
func (s *ImageStorage) ensureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bucketReady {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errs.Wrap(err, "failed to check bucket")
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return errs.Wrap(err, "failed to create bucket")
		}
	}
	s.bucketReady = true
	return nil
}

func (s *ImageStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to upload image")
	}
	return fmt.Sprintf("%s/%s", s.baseURL, objectName), nil
}
