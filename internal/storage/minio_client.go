package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"weddingsite/internal/config"
)

type MinIOStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOStorage(ctx context.Context, cfg config.MinIO) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
	}

	return &MinIOStorage{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func (m *MinIOStorage) Save(ctx context.Context, key string, file io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return fmt.Errorf("upload %s to MinIO: %w", key, err)
	}

	return nil
}

func (m *MinIOStorage) Rename(ctx context.Context, oldKey, newKey string) error {
	if oldKey == newKey {
		return nil
	}

	if _, err := m.client.StatObject(ctx, m.bucket, newKey, minio.StatObjectOptions{}); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, newKey)
	}

	_, err := m.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: m.bucket, Object: newKey},
		minio.CopySrcOptions{Bucket: m.bucket, Object: oldKey})
	if err != nil {
		return m.wrap(err, "copy "+oldKey, oldKey)
	}

	if err := m.Remove(ctx, oldKey); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}

	return nil
}

func (m *MinIOStorage) Remove(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucket, key,
		minio.RemoveObjectOptions{
			GovernanceBypass: true,
		})
	if err != nil {
		return m.wrap(err, "remove "+key, key)
	}
	return nil
}

func (m *MinIOStorage) Size(ctx context.Context, key string) (int64, error) {
	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return 0, m.wrap(err, "stat "+key, key)
	}
	return info.Size, nil
}

func (m *MinIOStorage) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, key)
}

func (m *MinIOStorage) wrap(err error, op, key string) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return fmt.Errorf("%s in MinIO: %w", op, err)
}
