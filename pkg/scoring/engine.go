package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/riskscope/riskscope/pkg/customer"
)

// Engine scores customers and classifies them into risk tiers.
// It is stateless apart from its weights and safe for reuse across batches.
type Engine struct {
	weights Weights
}

// NewEngine creates a scoring engine with the given weights.
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// CalculateScore maps the three normalized signals to an integer score.
// Inputs are range-checked; the result is rounded half-to-even, matching
// the reference rounding at .5 boundaries.
func (e *Engine) CalculateScore(paymentHistory, creditUtilization, ageOfCreditHistory float64) (int, error) {
	if paymentHistory < 0 || paymentHistory > 100 {
		return 0, fmt.Errorf("%w: paymentHistory out of range", ErrInvalidArgument)
	}
	if creditUtilization < 0 || creditUtilization > 100 {
		return 0, fmt.Errorf("%w: creditUtilization out of range", ErrInvalidArgument)
	}
	if ageOfCreditHistory < 0 {
		return 0, fmt.Errorf("%w: ageOfCreditHistory negative", ErrInvalidArgument)
	}

	cappedAge := math.Min(ageOfCreditHistory, e.weights.AgeCapYears)
	raw := e.weights.PaymentHistory*paymentHistory +
		e.weights.CreditUtilization*(100-creditUtilization) +
		e.weights.CreditAge*cappedAge

	return int(math.RoundToEven(raw)), nil
}

// Classify maps a score to a risk tier. Scores below the threshold are
// high risk; the threshold itself is low risk.
func (e *Engine) Classify(score int) RiskTier {
	if score < e.weights.RiskThreshold {
		return HighRisk
	}
	return LowRisk
}

// EvaluateOne validates, scores, and classifies a single customer.
// Identifier and name are copied verbatim into the result.
func (e *Engine) EvaluateOne(p customer.Profile) (*EvaluationResult, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: invalid customer data (customer %d)", ErrInvalidArgument, p.CustomerID)
	}

	score, err := e.CalculateScore(p.PaymentHistory, p.CreditUtilization, p.AgeOfCreditHistory)
	if err != nil {
		return nil, err
	}

	return &EvaluationResult{
		CustomerID:  p.CustomerID,
		Name:        p.Name,
		CreditScore: score,
		RiskTier:    e.Classify(score),
	}, nil
}

// EvaluateAll evaluates a batch in input order and returns the results
// sorted by score descending; ties keep their input order. The first
// invalid record aborts the whole batch and partial results are discarded.
func (e *Engine) EvaluateAll(profiles []customer.Profile) ([]EvaluationResult, error) {
	results := make([]EvaluationResult, 0, len(profiles))
	for _, p := range profiles {
		r, err := e.EvaluateOne(p)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreditScore > results[j].CreditScore
	})

	return results, nil
}

// EvaluateEach evaluates a batch without aborting on bad records, returning
// one outcome per profile in input order. Callers can report on invalid
// records without losing the valid ones.
func (e *Engine) EvaluateEach(profiles []customer.Profile) []Outcome {
	outcomes := make([]Outcome, 0, len(profiles))
	for _, p := range profiles {
		r, err := e.EvaluateOne(p)
		outcomes = append(outcomes, Outcome{
			CustomerID: p.CustomerID,
			Result:     r,
			Err:        err,
		})
	}
	return outcomes
}

// FilterHighRisk returns the high-risk subset of results, preserving order.
func FilterHighRisk(results []EvaluationResult) []EvaluationResult {
	var filtered []EvaluationResult
	for _, r := range results {
		if r.RiskTier == HighRisk {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
