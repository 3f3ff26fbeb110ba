package strategy

import (
	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/finance"
)

// financing bundles the purchase-loan figures shared by the calculators.
type financing struct {
	DownPayment       float64
	ClosingCosts      float64
	LoanAmount        float64
	MonthlyPayment    float64
	AnnualDebtService float64
	TotalCashRequired float64
}

func financingFor(a assumption.Assumptions) financing {
	f := financing{
		DownPayment:  a.PurchasePrice * a.DownPaymentPct,
		ClosingCosts: a.PurchasePrice * a.ClosingCostsPct,
	}
	f.LoanAmount = a.PurchasePrice - f.DownPayment
	if a.LoanTermYears > 0 && f.LoanAmount > 0 {
		f.MonthlyPayment = finance.MonthlyPayment(f.LoanAmount, a.InterestRate, a.LoanTermYears)
	}
	f.AnnualDebtService = f.MonthlyPayment * 12
	f.TotalCashRequired = f.DownPayment + f.ClosingCosts
	return f
}

// safeDiv guards the degenerate-denominator case; the fallback is always 0
// here, never an error.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
