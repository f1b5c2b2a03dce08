// Package archive stores report snapshots as JSON blobs.
// Backends: local filesystem, S3-compatible object stores, and GCS.
package archive

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// StorageClient abstracts blob storage for report snapshots and raw batches.
type StorageClient interface {
	PutReport(ctx context.Context, source, reportID string, data []byte) error
	GetReport(ctx context.Context, source, reportID string) ([]byte, error)
	PutBatch(ctx context.Context, source, batchID string, data []byte) error
	GetBatch(ctx context.Context, source, batchID string) ([]byte, error)
}

// ReportKey returns the blob key under which a report for source is stored.
// Every backend uses this layout; persisted storage refs must match it.
func ReportKey(source, reportID string) string {
	return path.Join(source, "reports", reportID+".json")
}

// BatchKey returns the blob key under which a raw submitted batch is stored.
func BatchKey(source, batchID string) string {
	return path.Join(source, "batches", batchID+".json")
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(key string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(key))
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutReport stores a report blob.
func (s *LocalStorage) PutReport(ctx context.Context, source, reportID string, data []byte) error {
	return s.put(s.path(ReportKey(source, reportID)), data)
}

// GetReport retrieves a report blob.
func (s *LocalStorage) GetReport(ctx context.Context, source, reportID string) ([]byte, error) {
	return os.ReadFile(s.path(ReportKey(source, reportID)))
}

// PutBatch stores a raw submitted batch blob.
func (s *LocalStorage) PutBatch(ctx context.Context, source, batchID string, data []byte) error {
	return s.put(s.path(BatchKey(source, batchID)), data)
}

// GetBatch retrieves a raw batch blob.
func (s *LocalStorage) GetBatch(ctx context.Context, source, batchID string) ([]byte, error) {
	return os.ReadFile(s.path(BatchKey(source, batchID)))
}
