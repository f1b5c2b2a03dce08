// Package store persists evaluation runs, reports, and per-customer results
// in Postgres.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riskscope/riskscope/pkg/report"
)

// Service provides report persistence backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a new store Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// ReportRow is report metadata from the database. The full result list lives
// in the archive blob referenced by StorageRef.
type ReportRow struct {
	ID           string
	Source       string
	Total        int
	HighRisk     int
	LowRisk      int
	AverageScore float64
	StorageRef   string
	GeneratedAt  time.Time
	CreatedAt    time.Time
}

// ResultRow is a single persisted evaluation result.
type ResultRow struct {
	ID          string
	ReportID    string
	Position    int
	CustomerID  int
	Name        string
	CreditScore int
	RiskStatus  string
}

// SaveReport persists report metadata and its ordered results.
// Position records the evaluator's descending-score order.
func (s *Service) SaveReport(ctx context.Context, rep *report.Report, storageRef string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save report: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO reports (id, source, total, high_risk, low_risk, average_score, storage_ref, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rep.ID, rep.Source, rep.Summary.Total, rep.Summary.HighRisk, rep.Summary.LowRisk,
		rep.Summary.AverageScore, storageRef, rep.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report %s: %w", rep.ID, err)
	}

	for i, r := range rep.Results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO results (report_id, position, customer_id, name, credit_score, risk_status)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			rep.ID, i, r.CustomerID, r.Name, r.CreditScore, r.RiskTier.String(),
		)
		if err != nil {
			return fmt.Errorf("insert result %d for report %s: %w", r.CustomerID, rep.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save report: %w", err)
	}
	return nil
}

// GetReport retrieves report metadata by ID.
func (s *Service) GetReport(ctx context.Context, reportID string) (*ReportRow, error) {
	r := &ReportRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, total, high_risk, low_risk, average_score, storage_ref, generated_at, created_at
		 FROM reports WHERE id = $1`,
		reportID,
	).Scan(&r.ID, &r.Source, &r.Total, &r.HighRisk, &r.LowRisk, &r.AverageScore, &r.StorageRef, &r.GeneratedAt, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", reportID, err)
	}
	return r, nil
}

// ListReports returns report metadata, newest first.
func (s *Service) ListReports(ctx context.Context, limit int) ([]ReportRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, total, high_risk, low_risk, average_score, storage_ref, generated_at, created_at
		 FROM reports ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []ReportRow
	for rows.Next() {
		var r ReportRow
		if err := rows.Scan(&r.ID, &r.Source, &r.Total, &r.HighRisk, &r.LowRisk, &r.AverageScore, &r.StorageRef, &r.GeneratedAt, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// ListResults returns a report's results in stored (descending score) order,
// optionally filtered to a single risk status.
func (s *Service) ListResults(ctx context.Context, reportID, riskStatus string) ([]ResultRow, error) {
	query := `SELECT id, report_id, position, customer_id, name, credit_score, risk_status
	          FROM results WHERE report_id = $1 ORDER BY position`
	args := []any{reportID}
	if riskStatus != "" {
		query = `SELECT id, report_id, position, customer_id, name, credit_score, risk_status
		         FROM results WHERE report_id = $1 AND risk_status = $2 ORDER BY position`
		args = append(args, riskStatus)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []ResultRow
	for rows.Next() {
		var r ResultRow
		if err := rows.Scan(&r.ID, &r.ReportID, &r.Position, &r.CustomerID, &r.Name, &r.CreditScore, &r.RiskStatus); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// CreateRun inserts a run record and returns its ID.
func (s *Service) CreateRun(ctx context.Context, source string, customerCount int) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO runs (source, customer_count) VALUES ($1, $2) RETURNING id`,
		source, customerCount,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}
	return id, nil
}

// UpdateRunStatus updates a run's status and optional error message.
func (s *Service) UpdateRunStatus(ctx context.Context, id, status string, errMsg *string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = $1, error_message = $2, updated_at = now() WHERE id = $3`,
		status, errMsg, id,
	)
	if err != nil {
		return fmt.Errorf("update run status: %w", err)
	}
	return nil
}

// AttachRunReport links a completed run to its report.
func (s *Service) AttachRunReport(ctx context.Context, runID, reportID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET report_id = $1, updated_at = now() WHERE id = $2`,
		reportID, runID,
	)
	if err != nil {
		return fmt.Errorf("attach report to run: %w", err)
	}
	return nil
}
