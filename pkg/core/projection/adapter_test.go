package projection

import (
	"testing"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/property"
)

func TestBuildInput(t *testing.T) {
	a := assumption.LoadProperty(&property.Data{
		Valuations: property.Valuations{Zestimate: 425000},
		Rentals:    property.Rentals{AverageRent: 2100},
		Market:     property.Market{PropertyTaxesAnnual: 4500, MortgageRate30Yr: 5.6},
	})

	in := BuildInput(a, 10)

	if in.Years != 10 {
		t.Errorf("expected 10 years, got %d", in.Years)
	}
	if in.PurchasePrice != 382500 {
		t.Errorf("expected purchase price 382500, got %.0f", in.PurchasePrice)
	}
	if in.LoanAmount != 267750 {
		t.Errorf("expected loan amount 267750, got %.0f", in.LoanAmount)
	}
	// Rehab is planned by default, so year zero starts at ARV.
	if in.InitialPropertyValue != a.ARV {
		t.Errorf("expected initial value %.0f (ARV), got %.0f", a.ARV, in.InitialPropertyValue)
	}
	if in.InitialMonthlyRent != 2100 {
		t.Errorf("expected rent 2100, got %.0f", in.InitialMonthlyRent)
	}
	if in.AnnualRentGrowth <= 0 || in.AnnualAppreciation <= 0 {
		t.Error("growth drivers must be seeded")
	}
}

func TestBuildInput_DefaultHorizon(t *testing.T) {
	a := assumption.LoadProperty(nil)
	in := BuildInput(a, 0)
	if in.Years != 30 {
		t.Errorf("expected default 30-year horizon, got %d", in.Years)
	}
}

func TestBuildInput_NoRehabStartsAtMarket(t *testing.T) {
	a := assumption.LoadProperty(nil)
	a = assumption.UpdateDirect(a, assumption.KeyRehabCostPct, 0)

	in := BuildInput(a, 5)
	if in.InitialPropertyValue != a.BasePurchasePrice {
		t.Errorf("expected market value %.0f, got %.0f", a.BasePurchasePrice, in.InitialPropertyValue)
	}
}
