package strategy

import (
	"math"
	"testing"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/property"
)

// worksheetFixture is the baseline deal used across calculator tests:
// $425K market value at a 10% discount, 10% upside to ARV, $2,100 rent,
// 30% down at 5.6%/30yr.
func worksheetFixture() assumption.Assumptions {
	return assumption.LoadProperty(&property.Data{
		Valuations: property.Valuations{Zestimate: 425000, ZestimateHighPct: 10},
		Rentals:    property.Rentals{AverageRent: 2100, AverageDailyRate: 250, OccupancyRate: 0.65},
		Market:     property.Market{PropertyTaxesAnnual: 4500, MortgageRate30Yr: 5.6},
	})
}

func TestCalculateLTR_RegressionFixture(t *testing.T) {
	a := worksheetFixture()
	r := CalculateLTR(a)

	if r.LoanAmount != 267750 {
		t.Errorf("expected loan amount 267750, got %.2f", r.LoanAmount)
	}
	if r.TotalCashRequired != 126225 {
		t.Errorf("expected total cash 126225 (down + closing), got %.2f", r.TotalCashRequired)
	}
	if r.AnnualGrossRent != 25200 {
		t.Errorf("expected gross rent 25200, got %.2f", r.AnnualGrossRent)
	}
	if math.Abs(r.VacancyLoss-756) > 1e-9 {
		t.Errorf("expected vacancy loss 756, got %.2f", r.VacancyLoss)
	}
	// NOI = (25200 - 756) - (4500 + 1500 + 0 + 1260)
	if math.Abs(r.NOI-17184) > 1e-9 {
		t.Errorf("expected NOI 17184, got %.2f", r.NOI)
	}

	// Monthly cash flow must be bit-for-bit reproducible from the standard
	// amortization formula evaluated independently.
	rate := 0.056 / 12
	n := float64(360)
	payment := 267750 * (rate * math.Pow(1+rate, n)) / (math.Pow(1+rate, n) - 1)
	wantMonthly := (17184 - payment*12) / 12
	if math.Abs(r.MonthlyCashFlow-wantMonthly) > 1e-6 {
		t.Errorf("expected monthly cash flow %.10f, got %.10f", wantMonthly, r.MonthlyCashFlow)
	}

	if math.Abs(r.CapRate-17184.0/382500.0) > 1e-12 {
		t.Errorf("unexpected cap rate %.6f", r.CapRate)
	}
	if math.Abs(r.OnePercentRule-2100.0/382500.0) > 1e-12 {
		t.Errorf("unexpected one percent rule %.6f", r.OnePercentRule)
	}
}

func TestCalculateLTR_ZeroPurchasePrice(t *testing.T) {
	a := worksheetFixture()
	a.BasePurchasePrice = 0
	a = assumption.Recompute(a)

	r := CalculateLTR(a)

	if r.CapRate != 0 {
		t.Errorf("expected cap rate 0 for zero price, got %v", r.CapRate)
	}
	if r.OnePercentRule != 0 {
		t.Errorf("expected one percent rule 0 for zero price, got %v", r.OnePercentRule)
	}
	if math.IsNaN(r.CashOnCash) || math.IsInf(r.CashOnCash, 0) {
		t.Errorf("cash on cash must stay finite, got %v", r.CashOnCash)
	}
}

func TestCalculateLTR_ZeroDebtService(t *testing.T) {
	a := worksheetFixture()
	a.DownPaymentPct = 1.0 // all-cash purchase

	r := CalculateLTR(a)

	if r.AnnualDebtService != 0 {
		t.Fatalf("expected no debt service, got %.2f", r.AnnualDebtService)
	}
	if r.DSCR != 0 {
		t.Errorf("expected DSCR fallback 0 with no debt, got %v", r.DSCR)
	}
}

func TestCalculateAll_DoesNotMutateAssumptions(t *testing.T) {
	a := worksheetFixture()
	before := a

	CalculateAll(a)

	if a != before {
		t.Error("calculators must not mutate the assumptions snapshot")
	}
}
