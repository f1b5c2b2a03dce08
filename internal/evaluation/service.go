// Package evaluation orchestrates the hosted pipeline: archive the submitted
// batch, evaluate it, persist the report, and track the run lifecycle.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/riskscope/riskscope/internal/archive"
	"github.com/riskscope/riskscope/internal/store"
	"github.com/riskscope/riskscope/pkg/customer"
	"github.com/riskscope/riskscope/pkg/report"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// Run lifecycle statuses.
const (
	StatusQueued    = "QUEUED"
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Request describes a batch to evaluate. Source labels where the batch came
// from (a feed name, an upload, a file path) and is used as the archive prefix.
type Request struct {
	Source    string             `json:"source"`
	Customers []customer.Profile `json:"customers"`
}

// Service runs the evaluation pipeline against the store and archive.
type Service struct {
	store   *store.Service
	archive archive.StorageClient
	engine  *scoring.Engine
}

// NewService creates a new evaluation Service.
func NewService(st *store.Service, ar archive.StorageClient, engine *scoring.Engine) *Service {
	return &Service{store: st, archive: ar, engine: engine}
}

// Process evaluates a batch end to end and returns the persisted report.
// Evaluation is all-or-nothing: the first invalid record fails the run.
func (s *Service) Process(ctx context.Context, req Request) (rep *report.Report, err error) {
	source := req.Source
	if source == "" {
		source = "default"
	}

	var runID string
	runID, err = s.store.CreateRun(ctx, source, len(req.Customers))
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	if err = s.store.UpdateRunStatus(ctx, runID, StatusRunning, nil); err != nil {
		return nil, fmt.Errorf("update run status: %w", err)
	}

	// On failure, mark the run as failed
	defer func() {
		if err != nil {
			errMsg := err.Error()
			if updateErr := s.store.UpdateRunStatus(ctx, runID, StatusFailed, &errMsg); updateErr != nil {
				log.Printf("failed to update run status: %v", updateErr)
			}
		}
	}()

	// Keep the raw submission for audit/replay
	if raw, marshalErr := json.Marshal(req.Customers); marshalErr == nil {
		batchID := uuid.New().String()
		if putErr := s.archive.PutBatch(ctx, source, batchID, raw); putErr != nil {
			log.Printf("archive batch %s: %v", batchID, putErr)
		}
	}

	var results []scoring.EvaluationResult
	results, err = s.engine.EvaluateAll(req.Customers)
	if err != nil {
		return nil, fmt.Errorf("evaluate batch: %w", err)
	}

	rep = report.New(source, results)

	var data []byte
	data, err = json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err = s.archive.PutReport(ctx, source, rep.ID, data); err != nil {
		return nil, fmt.Errorf("archive report: %w", err)
	}

	// The persisted ref mirrors the archive key layout so the blob can be
	// located without going through a backend.
	storageRef := archive.ReportKey(source, rep.ID)
	if err = s.store.SaveReport(ctx, rep, storageRef); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	if err = s.store.AttachRunReport(ctx, runID, rep.ID); err != nil {
		return nil, fmt.Errorf("attach report: %w", err)
	}
	if err = s.store.UpdateRunStatus(ctx, runID, StatusCompleted, nil); err != nil {
		return nil, fmt.Errorf("complete run: %w", err)
	}

	return rep, nil
}

// GetReport loads a full report: metadata from the store, results from the
// archived blob.
func (s *Service) GetReport(ctx context.Context, reportID string) (*report.Report, error) {
	row, err := s.store.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	data, err := s.archive.GetReport(ctx, row.Source, row.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch archived report %s: %w", reportID, err)
	}

	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("unmarshal archived report %s: %w", reportID, err)
	}
	return &rep, nil
}
