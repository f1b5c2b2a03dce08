package main

import (
	"path/filepath"
	"testing"

	"github.com/riskscope/riskscope/pkg/scoring"
)

func TestEvaluateCmdFlags(t *testing.T) {
	cmd := newEvaluateCmd()

	// Test default values
	f := cmd.Flags()
	output, _ := f.GetString("output")
	if output != "text" {
		t.Errorf("default output = %q, want text", output)
	}
	highRisk, _ := f.GetBool("high-risk")
	if highRisk {
		t.Error("high-risk should default to false")
	}

	// Test that flags exist
	for _, flag := range []string{"input", "output", "high-risk", "save"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestReportCmdFlags(t *testing.T) {
	cmd := newReportCmd()
	f := cmd.Flags()

	output, _ := f.GetString("output")
	if output != "text" {
		t.Errorf("default output = %q, want text", output)
	}

	for _, flag := range []string{"input", "output", "high-risk"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestValidateCmdFlags(t *testing.T) {
	cmd := newValidateCmd()
	if cmd.Flags().Lookup("input") == nil {
		t.Error("missing flag: input")
	}
}

func TestLoadWeightsFallsBackToDefaults(t *testing.T) {
	// No config file anywhere under the temp dir, so defaults apply.
	input := filepath.Join(t.TempDir(), "customers.json")
	if got := loadWeights(input); got != scoring.Defaults() {
		t.Errorf("loadWeights = %+v, want defaults", got)
	}
}
