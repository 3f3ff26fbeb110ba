package strategy

import "deal_analyzer/pkg/core/assumption"

// WholesaleResult holds the wholesale outputs. MAO is the Maximum Allowable
// Offer under the 70% rule, net of repairs and the assignment fee. The fee is
// a percentage of market value, not of the negotiated price.
type WholesaleResult struct {
	WholesaleFee       float64 `json:"wholesale_fee"`
	MAO                float64 `json:"mao"`
	PurchasePctOfARV   float64 `json:"purchase_pct_of_arv"`
	IsPurchaseBelowMAO bool    `json:"is_purchase_below_mao"`
	SpreadFromPurchase float64 `json:"spread_from_purchase"`
}

// CalculateWholesale runs the wholesale formula set. A zero ARV reports the
// purchase at 100% of ARV rather than dividing by zero.
func CalculateWholesale(a assumption.Assumptions) WholesaleResult {
	fee := a.BasePurchasePrice * a.WholesaleFeePct
	mao := a.ARV*flip70RulePct - a.RehabCost - fee

	pctOfARV := 1.0
	if a.ARV != 0 {
		pctOfARV = a.PurchasePrice / a.ARV
	}

	return WholesaleResult{
		WholesaleFee:       fee,
		MAO:                mao,
		PurchasePctOfARV:   pctOfARV,
		IsPurchaseBelowMAO: a.PurchasePrice <= mao,
		SpreadFromPurchase: mao - a.PurchasePrice,
	}
}
