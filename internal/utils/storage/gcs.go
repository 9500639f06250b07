package storage

import (
	"context"
	"fmt"
	"strings"

	"receipt-ledger/internal/utils"

	gcs "cloud.google.com/go/storage"
)

type gcsStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCS uses Application Default Credentials.
func NewGCS(ctx context.Context) (Storage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &gcsStorage{client: client, bucket: utils.GetConfig("GCS_BUCKET")}, nil
}

func (s *gcsStorage) UploadFile(ctx context.Context, fileName string, data []byte, folder string, allowExt ...string) (string, error) {
	detected, err := DetectFile(data, allowExt...)
	if err != nil {
		return "", err
	}

	key := objectKey(folder, fileName, detected.Extension)
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = detected.MIMEType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write GCS object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close GCS writer: %w", err)
	}
	return key, nil
}

func (s *gcsStorage) DeleteFile(ctx context.Context, objectKey string) error {
	return s.client.Bucket(s.bucket).Object(objectKey).Delete(ctx)
}

func (s *gcsStorage) baseURL() string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucket)
}

func (s *gcsStorage) GetPublicLinkKey(objectKey string) string {
	return s.baseURL() + objectKey
}

func (s *gcsStorage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, s.baseURL()) {
		return ""
	}
	return strings.TrimPrefix(link, s.baseURL())
}
