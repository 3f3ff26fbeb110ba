// Package finance holds the shared loan arithmetic used by every strategy
// calculator.
package finance

import "math"

// MonthlyPayment returns the fully-amortizing monthly payment for a loan.
// annualRate is a fraction (0.056, not 5.6). A zero rate degenerates to a
// straight-line payoff; zero principal or term returns 0.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	if principal <= 0 || years <= 0 {
		return 0
	}
	n := float64(years * 12)
	if annualRate == 0 {
		return principal / n
	}
	r := annualRate / 12
	factor := math.Pow(1+r, n)
	return principal * (r * factor) / (factor - 1)
}
