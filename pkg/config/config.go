// Package config handles loading and managing RiskScope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/riskscope/riskscope/pkg/scoring"
)

// Config is the top-level configuration for RiskScope.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
}

// ScoringConfig controls scoring behavior. Zero-valued fields fall back to
// the model defaults; overrides exist for exercising alternative thresholds,
// not for production tuning.
type ScoringConfig struct {
	PaymentHistoryWeight    float64 `yaml:"payment_history_weight"`
	CreditUtilizationWeight float64 `yaml:"credit_utilization_weight"`
	CreditAgeWeight         float64 `yaml:"credit_age_weight"`
	AgeCapYears             float64 `yaml:"age_cap_years"`
	RiskThreshold           int     `yaml:"risk_threshold"`
}

// DefaultConfig returns a Config equal to the model defaults.
func DefaultConfig() *Config {
	w := scoring.Defaults()
	return &Config{
		Scoring: ScoringConfig{
			PaymentHistoryWeight:    w.PaymentHistory,
			CreditUtilizationWeight: w.CreditUtilization,
			CreditAgeWeight:         w.CreditAge,
			AgeCapYears:             w.AgeCapYears,
			RiskThreshold:           w.RiskThreshold,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Weights converts the scoring section into engine weights, filling any
// zero-valued field from the defaults.
func (c *Config) Weights() scoring.Weights {
	w := scoring.Defaults()
	if c.Scoring.PaymentHistoryWeight != 0 {
		w.PaymentHistory = c.Scoring.PaymentHistoryWeight
	}
	if c.Scoring.CreditUtilizationWeight != 0 {
		w.CreditUtilization = c.Scoring.CreditUtilizationWeight
	}
	if c.Scoring.CreditAgeWeight != 0 {
		w.CreditAge = c.Scoring.CreditAgeWeight
	}
	if c.Scoring.AgeCapYears != 0 {
		w.AgeCapYears = c.Scoring.AgeCapYears
	}
	if c.Scoring.RiskThreshold != 0 {
		w.RiskThreshold = c.Scoring.RiskThreshold
	}
	return w
}

// FindConfigFile looks for .riskscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".riskscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the local cache directory for a given input path.
// Uses ~/.cache/riskscope/<slug>/ to avoid polluting data directories.
func CacheDir(inputPath string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "riskscope", slug(inputPath))
}

// ReportDir returns the report snapshot directory for an input path.
func ReportDir(inputPath string) string {
	return filepath.Join(CacheDir(inputPath), "reports")
}

// slug creates a filesystem-safe identifier from a path, using its last two
// components for readability.
func slug(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	dir := filepath.Base(filepath.Dir(abs))
	base := filepath.Base(abs)
	return dir + "_" + base
}
