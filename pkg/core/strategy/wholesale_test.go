package strategy

import (
	"math"
	"testing"

	"deal_analyzer/pkg/core/assumption"
)

func TestCalculateWholesale_Fixture(t *testing.T) {
	a := worksheetFixture() // arv 467500, rehab 21250, fee pct 0.007 of 425000
	r := CalculateWholesale(a)

	if math.Abs(r.WholesaleFee-2975) > 1e-9 {
		t.Errorf("expected wholesale fee 2975, got %.2f", r.WholesaleFee)
	}

	wantMAO := 467500*0.70 - 21250 - 2975
	if math.Abs(r.MAO-wantMAO) > 1e-9 {
		t.Errorf("expected MAO %.2f, got %.2f", wantMAO, r.MAO)
	}

	if math.Abs(r.PurchasePctOfARV-382500.0/467500.0) > 1e-12 {
		t.Errorf("unexpected purchase pct of ARV %.6f", r.PurchasePctOfARV)
	}
	if math.Abs(r.SpreadFromPurchase-(wantMAO-382500)) > 1e-9 {
		t.Errorf("expected spread %.2f, got %.2f", wantMAO-382500, r.SpreadFromPurchase)
	}
	if r.IsPurchaseBelowMAO {
		t.Error("purchase above MAO should not flag as below")
	}
}

func TestCalculateWholesale_FeePinnedToMarketValue(t *testing.T) {
	a := worksheetFixture()
	feeBefore := CalculateWholesale(a).WholesaleFee

	// Negotiating the price down must not change the fee or the MAO.
	a = assumption.UpdateAdjustment(a, assumption.KeyPurchasePriceAdj, -0.40)
	r := CalculateWholesale(a)

	if r.WholesaleFee != feeBefore {
		t.Errorf("fee moved with negotiated price: %.2f -> %.2f", feeBefore, r.WholesaleFee)
	}
	if !r.IsPurchaseBelowMAO {
		t.Error("a 40% discount should land below MAO")
	}
}

func TestCalculateWholesale_ZeroARV(t *testing.T) {
	a := worksheetFixture()
	a.BasePurchasePrice = 0 // drives ARV to 0 as well
	a = assumption.Recompute(a)

	r := CalculateWholesale(a)

	if r.PurchasePctOfARV != 1 {
		t.Errorf("expected pct-of-ARV fallback 1 when ARV is 0, got %v", r.PurchasePctOfARV)
	}
	if math.IsNaN(r.MAO) {
		t.Error("MAO must never be NaN")
	}
}
