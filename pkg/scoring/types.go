// Package scoring implements the RiskScope credit scoring engine.
// It maps validated customer signals to a deterministic 0-100 score,
// classifies customers into risk tiers, and evaluates whole batches.
package scoring

import (
	"encoding/json"
	"fmt"
)

// RiskTier is the two-valued risk classification of a scored customer.
type RiskTier int

const (
	HighRisk RiskTier = iota
	LowRisk
)

// External string representations. These exact literals are the wire and
// file contract; the aggregator also groups on them.
const (
	highRiskLabel = "High Risk"
	lowRiskLabel  = "Low Risk"
)

// String returns the external representation of the tier.
func (t RiskTier) String() string {
	if t == HighRisk {
		return highRiskLabel
	}
	return lowRiskLabel
}

// MarshalJSON encodes the tier as its external string literal.
func (t RiskTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the external string literal back into a tier.
func (t *RiskTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRiskTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseRiskTier converts an external tier string into a RiskTier.
func ParseRiskTier(s string) (RiskTier, error) {
	switch s {
	case highRiskLabel:
		return HighRisk, nil
	case lowRiskLabel:
		return LowRisk, nil
	default:
		return HighRisk, fmt.Errorf("unknown risk tier %q", s)
	}
}

// EvaluationResult is the scored outcome for a single customer.
// Immutable once created.
type EvaluationResult struct {
	CustomerID  int      `json:"CustomerId"`
	Name        string   `json:"Name"`
	CreditScore int      `json:"CreditScore"`
	RiskTier    RiskTier `json:"RiskStatus"`
}

// Outcome is the per-record result of a fault-tolerant batch evaluation:
// either a result or the validation error that prevented one.
type Outcome struct {
	CustomerID int
	Result     *EvaluationResult
	Err        error
}
