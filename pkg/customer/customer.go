// Package customer defines the customer profile entity consumed by the
// scoring pipeline and its validity rules.
package customer

import "strings"

// Profile is a single customer record as supplied by a data source.
// Immutable for the duration of scoring.
type Profile struct {
	CustomerID         int     `json:"CustomerId"`
	Name               string  `json:"Name"`
	PaymentHistory     float64 `json:"PaymentHistory"`
	CreditUtilization  float64 `json:"CreditUtilization"`
	AgeOfCreditHistory float64 `json:"AgeOfCreditHistory"`
}

// Valid reports whether the profile satisfies the scoring preconditions:
// a non-blank name, both percentage signals in [0,100], and a non-negative
// credit history age. Name is only trimmed for the emptiness check; the
// stored value is never modified.
func (p Profile) Valid() bool {
	if strings.TrimSpace(p.Name) == "" {
		return false
	}
	if p.PaymentHistory < 0 || p.PaymentHistory > 100 {
		return false
	}
	if p.CreditUtilization < 0 || p.CreditUtilization > 100 {
		return false
	}
	return p.AgeOfCreditHistory >= 0
}
