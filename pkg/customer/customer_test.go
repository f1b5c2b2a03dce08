package customer

import "testing"

func TestProfileValid(t *testing.T) {
	base := Profile{
		CustomerID:         1,
		Name:               "Marie Curie",
		PaymentHistory:     75,
		CreditUtilization:  30,
		AgeOfCreditHistory: 8,
	}

	tests := []struct {
		name   string
		mutate func(*Profile)
		want   bool
	}{
		{"valid profile", func(p *Profile) {}, true},
		{"empty name", func(p *Profile) { p.Name = "" }, false},
		{"whitespace name", func(p *Profile) { p.Name = " \t " }, false},
		{"payment history at lower bound", func(p *Profile) { p.PaymentHistory = 0 }, true},
		{"payment history at upper bound", func(p *Profile) { p.PaymentHistory = 100 }, true},
		{"payment history below range", func(p *Profile) { p.PaymentHistory = -0.1 }, false},
		{"payment history above range", func(p *Profile) { p.PaymentHistory = 100.1 }, false},
		{"utilization at bounds", func(p *Profile) { p.CreditUtilization = 100 }, true},
		{"utilization below range", func(p *Profile) { p.CreditUtilization = -1 }, false},
		{"utilization above range", func(p *Profile) { p.CreditUtilization = 101 }, false},
		{"zero age", func(p *Profile) { p.AgeOfCreditHistory = 0 }, true},
		{"negative age", func(p *Profile) { p.AgeOfCreditHistory = -0.5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			if got := p.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v for %+v", got, tt.want, p)
			}
		})
	}
}
