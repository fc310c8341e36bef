package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"storehub-server/internal/config"
	"storehub-server/internal/domain/media"
	"storehub-server/utils/entityid"
)

// MinIOStorage stores media blobs in a MinIO bucket, creating the bucket on
// startup when it does not exist yet.
type MinIOStorage struct {
	bucket  string
	baseURL string
	client  *minio.Client
	log     zerolog.Logger
}

func NewMinIOStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*MinIOStorage, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  miniocreds.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MinIOBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MinIOBucket, err)
		}
	}

	baseURL := strings.TrimRight(cfg.MinIOBaseURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.MinIOUseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIOEndpoint)
	}

	return &MinIOStorage{
		bucket:  cfg.MinIOBucket,
		baseURL: baseURL,
		client:  client,
		log:     log.With().Str("component", "minio-storage").Logger(),
	}, nil
}

func (s *MinIOStorage) Upload(ctx context.Context, data []byte, kindTag string) (media.UploadResult, error) {
	mtype := mimetype.Detect(data)
	key := fmt.Sprintf("%s/%s%s", kindTag, entityid.New("blob"), mtype.Extension())

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mtype.String(),
	})
	if err != nil {
		return media.UploadResult{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return media.UploadResult{
		Location:  fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key),
		Format:    mtype.String(),
		Bytes:     int64(len(data)),
		CreatedAt: time.Now(),
	}, nil
}

// Delete removes the blob at the given location. RemoveObject is a no-op for
// objects that are already gone, which keeps redelivered deletions harmless.
func (s *MinIOStorage) Delete(ctx context.Context, location string) error {
	u, err := url.Parse(location)
	if err != nil {
		return fmt.Errorf("parse location %q: %w", location, err)
	}
	key := strings.TrimPrefix(strings.TrimPrefix(u.Path, "/"), s.bucket+"/")

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			s.log.Debug().Str("key", key).Msg("blob already gone")
			return nil
		}
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	return nil
}

// Health checks that the bucket is reachable.
func (s *MinIOStorage) Health(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}
