package scoring

// Weights holds the scoring weights, the age cap, and the risk threshold.
// The defaults are the model constants; overrides exist so alternative
// thresholds can be exercised in tests without code changes.
type Weights struct {
	// Signal weights. Must describe a convex combination over the three
	// normalized inputs for the score to stay in [0,100].
	PaymentHistory    float64
	CreditUtilization float64
	CreditAge         float64

	// AgeCapYears caps the credit history age before weighting.
	AgeCapYears float64

	// RiskThreshold splits tiers: score < threshold is high risk.
	RiskThreshold int
}

// Defaults returns the standard model weights.
func Defaults() Weights {
	return Weights{
		PaymentHistory:    0.4,
		CreditUtilization: 0.3,
		CreditAge:         0.3,

		AgeCapYears: 10,

		RiskThreshold: 50,
	}
}
