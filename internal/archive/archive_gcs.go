package archive

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStorage implements StorageClient using Google Cloud Storage.
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCSStorage creates a GCS-backed StorageClient.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) put(ctx context.Context, key string, data []byte, meta map[string]string) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = "application/json"
	w.Metadata = meta
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", key, err)
	}
	return nil
}

func (s *GCSStorage) get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// PutReport stores a report blob tagged with its source and report ID so
// operators can trace a bucket object back to the run that produced it.
func (s *GCSStorage) PutReport(ctx context.Context, source, reportID string, data []byte) error {
	return s.put(ctx, ReportKey(source, reportID), data, map[string]string{
		"riskscope-source":    source,
		"riskscope-report-id": reportID,
	})
}

func (s *GCSStorage) GetReport(ctx context.Context, source, reportID string) ([]byte, error) {
	return s.get(ctx, ReportKey(source, reportID))
}

// PutBatch stores a raw submitted batch blob.
func (s *GCSStorage) PutBatch(ctx context.Context, source, batchID string, data []byte) error {
	return s.put(ctx, BatchKey(source, batchID), data, map[string]string{
		"riskscope-source":   source,
		"riskscope-batch-id": batchID,
	})
}

func (s *GCSStorage) GetBatch(ctx context.Context, source, batchID string) ([]byte, error) {
	return s.get(ctx, BatchKey(source, batchID))
}
