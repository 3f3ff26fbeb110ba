package strategy

import "deal_analyzer/pkg/core/assumption"

// flip70RulePct is the classic 70% rule: pay no more than 70% of ARV minus
// repair costs.
const flip70RulePct = 0.70

// FlipResult holds the fix-and-flip outputs. FlipMargin is the headline
// "is there room at all?" figure and deliberately ignores holding, closing
// and selling costs; the full P&L fields account for them.
type FlipResult struct {
	FlipMargin        float64 `json:"flip_margin"`
	MaxPurchase70Rule float64 `json:"max_purchase_70_rule"`
	Passes70Rule      bool    `json:"passes_70_rule"`

	DownPayment       float64 `json:"down_payment"`
	LoanAmount        float64 `json:"loan_amount"`
	PurchaseCosts     float64 `json:"purchase_costs"`
	HoldingCosts      float64 `json:"holding_costs"`
	SellingCosts      float64 `json:"selling_costs"`
	TotalCashInvested float64 `json:"total_cash_invested"`
	NetProfit         float64 `json:"net_profit"`

	ROI           float64 `json:"roi"`
	AnnualizedROI float64 `json:"annualized_roi"`
}

// CalculateFlip runs the fix-and-flip formula set: the quick margin check
// plus a full P&L with interest-only carry over the holding period.
func CalculateFlip(a assumption.Assumptions) FlipResult {
	f := financingFor(a)

	margin := a.ARV - a.PurchasePrice - a.RehabCost
	maxPurchase := a.ARV*flip70RulePct - a.RehabCost

	monthlyCarry := f.LoanAmount*a.InterestRate/12 +
		a.PropertyTaxes/12 + a.Insurance/12
	holdingCosts := monthlyCarry * float64(a.HoldingPeriodMonths)
	sellingCosts := a.ARV * a.SellingCostsPct

	netProfit := a.ARV - (a.PurchasePrice + f.ClosingCosts + a.RehabCost + holdingCosts) - sellingCosts
	cashInvested := f.DownPayment + f.ClosingCosts + a.RehabCost + holdingCosts

	roi := safeDiv(netProfit, cashInvested)
	annualized := 0.0
	if a.HoldingPeriodMonths > 0 {
		annualized = roi * 12 / float64(a.HoldingPeriodMonths)
	}

	return FlipResult{
		FlipMargin:        margin,
		MaxPurchase70Rule: maxPurchase,
		Passes70Rule:      a.PurchasePrice <= maxPurchase,

		DownPayment:       f.DownPayment,
		LoanAmount:        f.LoanAmount,
		PurchaseCosts:     f.ClosingCosts,
		HoldingCosts:      holdingCosts,
		SellingCosts:      sellingCosts,
		TotalCashInvested: cashInvested,
		NetProfit:         netProfit,

		ROI:           roi,
		AnnualizedROI: annualized,
	}
}
