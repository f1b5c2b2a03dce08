package report_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/riskscope/riskscope/pkg/report"
	"github.com/riskscope/riskscope/pkg/scoring"
)

func sampleResults() []scoring.EvaluationResult {
	return []scoring.EvaluationResult{
		{CustomerID: 1, Name: "Alice", CreditScore: 66, RiskTier: scoring.LowRisk},
		{CustomerID: 2, Name: "Bob", CreditScore: 51, RiskTier: scoring.LowRisk},
		{CustomerID: 3, Name: "Cara", CreditScore: 22, RiskTier: scoring.HighRisk},
	}
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(sampleResults())

	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.HighRisk != 1 {
		t.Errorf("HighRisk = %d, want 1", s.HighRisk)
	}
	if s.LowRisk != 2 {
		t.Errorf("LowRisk = %d, want 2", s.LowRisk)
	}

	// (66+51+22)/3, kept at full precision
	want := 139.0 / 3.0
	if math.Abs(s.AverageScore-want) > 1e-9 {
		t.Errorf("AverageScore = %v, want %v", s.AverageScore, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := report.Summarize(nil)

	if s.Total != 0 || s.HighRisk != 0 || s.LowRisk != 0 {
		t.Errorf("counts = %+v, want all zero", s)
	}
	if s.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0 for empty set", s.AverageScore)
	}
}

func TestNewReport(t *testing.T) {
	rep := report.New("batch-a", sampleResults())

	if rep.ID == "" {
		t.Error("expected a non-empty report ID")
	}
	if rep.Source != "batch-a" {
		t.Errorf("Source = %q, want %q", rep.Source, "batch-a")
	}
	if rep.GeneratedAt.IsZero() {
		t.Error("expected a generation timestamp")
	}
	if rep.GeneratedAt.Location() != rep.GeneratedAt.UTC().Location() {
		t.Error("expected UTC generation timestamp")
	}
	if rep.Summary.Total != 3 {
		t.Errorf("Summary.Total = %d, want 3", rep.Summary.Total)
	}

	other := report.New("batch-a", sampleResults())
	if other.ID == rep.ID {
		t.Error("expected distinct report IDs")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "r.json")

	in := report.New("fixture", sampleResults())
	if err := report.Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := report.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if out.ID != in.ID {
		t.Errorf("ID = %q, want %q", out.ID, in.ID)
	}
	if out.Summary != in.Summary {
		t.Errorf("Summary = %+v, want %+v", out.Summary, in.Summary)
	}
	if len(out.Results) != len(in.Results) {
		t.Fatalf("got %d results, want %d", len(out.Results), len(in.Results))
	}
	for i := range in.Results {
		if out.Results[i] != in.Results[i] {
			t.Errorf("Results[%d] = %+v, want %+v", i, out.Results[i], in.Results[i])
		}
	}
}

func TestLoadMissingReport(t *testing.T) {
	if _, err := report.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing report")
	}
}
