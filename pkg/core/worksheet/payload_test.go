package worksheet

import (
	"math"
	"testing"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/property"
	"deal_analyzer/pkg/core/strategy"
)

func fixture() assumption.Assumptions {
	return assumption.LoadProperty(&property.Data{
		Valuations: property.Valuations{Zestimate: 425000},
		Rentals:    property.Rentals{AverageRent: 2100, AverageDailyRate: 250},
		Market:     property.Market{PropertyTaxesAnnual: 4500, MortgageRate30Yr: 5.6},
	})
}

func TestFromAssumptions_WholePercents(t *testing.T) {
	a := fixture()
	req := FromAssumptions(a)

	if req.InterestRatePercent != 5.6 {
		t.Errorf("interest rate percent = %v, want 5.6", req.InterestRatePercent)
	}
	if req.DownPaymentPercent != 30 {
		t.Errorf("down payment percent = %v, want 30", req.DownPaymentPercent)
	}
	if req.PurchasePrice != 382500 {
		t.Errorf("purchase price = %v, want 382500", req.PurchasePrice)
	}
}

func TestRoundTrip_PreservesCalculatorInputs(t *testing.T) {
	a := fixture()
	got := FromAssumptions(a).ToAssumptions()

	if math.Abs(got.InterestRate-a.InterestRate) > 1e-12 {
		t.Errorf("interest rate = %v, want %v", got.InterestRate, a.InterestRate)
	}
	if got.PurchasePrice != a.PurchasePrice {
		t.Errorf("purchase price = %v, want %v", got.PurchasePrice, a.PurchasePrice)
	}
	if got.ARV != a.ARV {
		t.Errorf("arv = %v, want %v", got.ARV, a.ARV)
	}
	if got.RehabCost != a.RehabCost {
		t.Errorf("rehab cost = %v, want %v", got.RehabCost, a.RehabCost)
	}

	// The two snapshots must produce identical calculator output.
	want := strategy.CalculateLTR(a)
	have := strategy.CalculateLTR(got)
	if math.Abs(have.NOI-want.NOI) > 1e-9 {
		t.Errorf("NOI = %v, want %v", have.NOI, want.NOI)
	}
	if math.Abs(have.MonthlyCashFlow-want.MonthlyCashFlow) > 1e-9 {
		t.Errorf("monthly cash flow = %v, want %v", have.MonthlyCashFlow, want.MonthlyCashFlow)
	}
}

func TestFlatten_LTR(t *testing.T) {
	a := fixture()
	flat := Flatten(strategy.LTR, a)

	want := strategy.CalculateLTR(a)
	if flat["noi"] != want.NOI {
		t.Errorf("noi = %v, want %v", flat["noi"], want.NOI)
	}
	if flat["loan_amount"] != 267750 {
		t.Errorf("loan_amount = %v, want 267750", flat["loan_amount"])
	}
}

func TestFlatten_BRRRRInfiniteCashOnCash(t *testing.T) {
	a := fixture()
	// A 100% refi of ARV returns all cash; cash-on-cash is infinite and
	// cannot travel as a JSON number.
	a = assumption.UpdateDirect(a, assumption.KeyARVPct, 1.0)

	flat := Flatten(strategy.BRRRR, a)
	if flat["cash_on_cash_infinite"] != 1 {
		t.Errorf("cash_on_cash_infinite = %v, want 1", flat["cash_on_cash_infinite"])
	}
	if flat["cash_on_cash"] != 0 {
		t.Errorf("cash_on_cash = %v, want 0 placeholder", flat["cash_on_cash"])
	}
	for k, v := range flat {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Errorf("field %q = %v, not JSON-encodable", k, v)
		}
	}
}

func TestFlatten_Wholesale(t *testing.T) {
	a := fixture()
	flat := Flatten(strategy.Wholesale, a)

	want := strategy.CalculateWholesale(a)
	if flat["mao"] != want.MAO {
		t.Errorf("mao = %v, want %v", flat["mao"], want.MAO)
	}
	if want.IsPurchaseBelowMAO && flat["is_purchase_below_mao"] != 1 {
		t.Errorf("is_purchase_below_mao = %v, want 1", flat["is_purchase_below_mao"])
	}
}

func TestFlatten_UnknownStrategy(t *testing.T) {
	if got := Flatten(strategy.Name("bogus"), fixture()); got != nil {
		t.Errorf("Flatten(bogus) = %v, want nil", got)
	}
}
