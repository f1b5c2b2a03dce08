// Package report aggregates evaluation results into summary reports.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/riskscope/riskscope/pkg/scoring"
)

// Summary holds aggregate statistics over a result set.
// The mean is kept at full precision; display rounding is a renderer concern.
type Summary struct {
	Total        int     `json:"total"`
	HighRisk     int     `json:"high_risk"`
	LowRisk      int     `json:"low_risk"`
	AverageScore float64 `json:"average_score"`
}

// Report is a persistable snapshot of one batch evaluation.
type Report struct {
	ID          string                     `json:"id"`
	Source      string                     `json:"source,omitempty"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Summary     Summary                    `json:"summary"`
	Results     []scoring.EvaluationResult `json:"results"`
}

// Summarize computes totals, per-tier counts, and the mean score.
// An empty result set yields a zero mean rather than an error.
func Summarize(results []scoring.EvaluationResult) Summary {
	s := Summary{Total: len(results)}

	sum := 0
	for _, r := range results {
		sum += r.CreditScore
		if r.RiskTier == scoring.HighRisk {
			s.HighRisk++
		} else {
			s.LowRisk++
		}
	}

	if s.Total > 0 {
		s.AverageScore = float64(sum) / float64(s.Total)
	}

	return s
}

// New builds a report over the given results with a fresh ID and a UTC
// generation timestamp.
func New(source string, results []scoring.EvaluationResult) *Report {
	return &Report{
		ID:          uuid.New().String(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Summary:     Summarize(results),
		Results:     results,
	}
}
