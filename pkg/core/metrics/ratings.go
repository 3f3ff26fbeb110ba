// Package metrics maps strategy results to display-ready metric tuples and
// ranks the six strategies against each other.
//
// Two scoring schemes coexist on purpose: the five-bucket Rating drives the
// display badge through hand-tuned per-strategy threshold tables, while the
// numeric Score (rating metric x 100, capped at 100) drives ranking. The
// tables are literal constants; they are not derived from a common formula.
package metrics

import (
	"math"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/format"
	"deal_analyzer/pkg/core/strategy"
)

// Rating is the five-bucket display grade.
type Rating string

const (
	RatingPoor      Rating = "poor"
	RatingFair      Rating = "fair"
	RatingGood      Rating = "good"
	RatingGreat     Rating = "great"
	RatingExcellent Rating = "excellent"
)

// StrategyMetric is the display projection of one strategy result.
type StrategyMetric struct {
	Strategy       strategy.Name `json:"strategy"`
	Primary        string        `json:"primary"`
	PrimaryLabel   string        `json:"primary_label"`
	Secondary      string        `json:"secondary"`
	SecondaryLabel string        `json:"secondary_label"`
	Rating         Rating        `json:"rating"`
	PrimaryValue   float64       `json:"primary_value"`
	SecondaryValue float64       `json:"secondary_value"`
	Score          float64       `json:"score"`
}

// band pairs a threshold with the rating earned at that threshold.
type band struct {
	threshold float64
	rating    Rating
}

// Return-style bands: metric >= threshold earns the rating, descending.
var (
	ltrCashOnCashBands = []band{
		{0.15, RatingExcellent},
		{0.12, RatingGreat},
		{0.08, RatingGood},
		{0.05, RatingFair},
	}
	strCashOnCashBands = []band{
		{0.20, RatingExcellent},
		{0.15, RatingGreat},
		{0.10, RatingGood},
		{0.06, RatingFair},
	}
	brrrrCashOnCashBands = []band{
		{0.25, RatingExcellent},
		{0.15, RatingGreat},
		{0.10, RatingGood},
		{0.05, RatingFair},
	}
	flipMarginPctBands = []band{
		{0.25, RatingExcellent},
		{0.20, RatingGreat},
		{0.15, RatingGood},
		{0.10, RatingFair},
	}
)

// Cost-style bands: metric <= threshold earns the rating, ascending.
var (
	houseHackCostBands = []band{
		{0, RatingExcellent}, // living for free or better
		{500, RatingGreat},
		{1000, RatingGood},
		{1500, RatingFair},
	}
	wholesalePctOfARVBands = []band{
		{0.60, RatingExcellent},
		{0.65, RatingGreat},
		{0.70, RatingGood},
		{0.75, RatingFair},
	}
)

func rateAtLeast(v float64, bands []band) Rating {
	for _, b := range bands {
		if v >= b.threshold {
			return b.rating
		}
	}
	return RatingPoor
}

func rateAtMost(v float64, bands []band) Rating {
	for _, b := range bands {
		if v <= b.threshold {
			return b.rating
		}
	}
	return RatingPoor
}

// score normalizes a rating metric for ranking: metric x 100, capped at 100.
// +Inf (the BRRRR zero-cash-left case) maps to the finite sentinel 100 so
// sorting always terminates and never sees NaN.
func score(metric float64) float64 {
	if math.IsInf(metric, 1) {
		return 100
	}
	return math.Min(metric*100, 100)
}

// Evaluate maps every strategy result to its display metric, in registry
// order.
func Evaluate(a assumption.Assumptions, r strategy.Results) []StrategyMetric {
	return []StrategyMetric{
		evalLTR(r.LTR),
		evalSTR(r.STR),
		evalBRRRR(r.BRRRR),
		evalFlip(a, r.Flip),
		evalHouseHack(r.HouseHack),
		evalWholesale(a, r.Wholesale),
	}
}

// EvaluateOne computes the metric for a single strategy.
func EvaluateOne(name strategy.Name, a assumption.Assumptions) StrategyMetric {
	switch name {
	case strategy.LTR:
		return evalLTR(strategy.CalculateLTR(a))
	case strategy.STR:
		return evalSTR(strategy.CalculateSTR(a))
	case strategy.BRRRR:
		return evalBRRRR(strategy.CalculateBRRRR(a))
	case strategy.Flip:
		return evalFlip(a, strategy.CalculateFlip(a))
	case strategy.HouseHack:
		return evalHouseHack(strategy.CalculateHouseHack(a))
	case strategy.Wholesale:
		return evalWholesale(a, strategy.CalculateWholesale(a))
	}
	return StrategyMetric{Strategy: name, Rating: RatingPoor}
}

// Best returns the highest-scoring metric. Ties keep the earlier entry, so
// registry order is the deterministic tie-break.
func Best(ms []StrategyMetric) StrategyMetric {
	if len(ms) == 0 {
		return StrategyMetric{}
	}
	best := ms[0]
	for _, m := range ms[1:] {
		if m.Score > best.Score {
			best = m
		}
	}
	return best
}

func evalLTR(r strategy.LTRResult) StrategyMetric {
	return StrategyMetric{
		Strategy:       strategy.LTR,
		Primary:        format.Currency(r.MonthlyCashFlow),
		PrimaryLabel:   "Monthly Cash Flow",
		Secondary:      format.Percent(r.CashOnCash, 1),
		SecondaryLabel: "Cash-on-Cash",
		Rating:         rateAtLeast(r.CashOnCash, ltrCashOnCashBands),
		PrimaryValue:   r.MonthlyCashFlow,
		SecondaryValue: r.CashOnCash,
		Score:          score(r.CashOnCash),
	}
}

func evalSTR(r strategy.STRResult) StrategyMetric {
	return StrategyMetric{
		Strategy:       strategy.STR,
		Primary:        format.Currency(r.MonthlyCashFlow),
		PrimaryLabel:   "Monthly Cash Flow",
		Secondary:      format.Percent(r.CashOnCash, 1),
		SecondaryLabel: "Cash-on-Cash",
		Rating:         rateAtLeast(r.CashOnCash, strCashOnCashBands),
		PrimaryValue:   r.MonthlyCashFlow,
		SecondaryValue: r.CashOnCash,
		Score:          score(r.CashOnCash),
	}
}

func evalBRRRR(r strategy.BRRRRResult) StrategyMetric {
	coc := r.CashOnCash
	rating := rateAtLeast(coc, brrrrCashOnCashBands)
	if math.IsInf(coc, 1) {
		rating = RatingExcellent
	}

	secondaryValue := coc
	if math.IsInf(coc, 0) {
		// JSON cannot carry Inf; the display string keeps the glyph and the
		// numeric slot pins to the ranking sentinel.
		secondaryValue = 100
	}

	return StrategyMetric{
		Strategy:       strategy.BRRRR,
		Primary:        format.Currency(r.CashLeftInDeal),
		PrimaryLabel:   "Cash Left In Deal",
		Secondary:      format.Percent(coc, 1),
		SecondaryLabel: "Cash-on-Cash",
		Rating:         rating,
		PrimaryValue:   r.CashLeftInDeal,
		SecondaryValue: secondaryValue,
		Score:          score(coc),
	}
}

func evalFlip(a assumption.Assumptions, r strategy.FlipResult) StrategyMetric {
	marginPct := 0.0
	if a.ARV != 0 {
		marginPct = r.FlipMargin / a.ARV
	}
	return StrategyMetric{
		Strategy:       strategy.Flip,
		Primary:        format.Currency(r.NetProfit),
		PrimaryLabel:   "Net Profit",
		Secondary:      format.Percent(marginPct, 1),
		SecondaryLabel: "Margin of ARV",
		Rating:         rateAtLeast(marginPct, flipMarginPctBands),
		PrimaryValue:   r.NetProfit,
		SecondaryValue: marginPct,
		Score:          score(marginPct),
	}
}

func evalHouseHack(r strategy.HouseHackResult) StrategyMetric {
	savingsRatio := 0.0
	if r.MarketRent != 0 {
		savingsRatio = r.MonthlySavings / r.MarketRent
	}
	return StrategyMetric{
		Strategy:       strategy.HouseHack,
		Primary:        format.Currency(r.EffectiveHousingCost),
		PrimaryLabel:   "Effective Housing Cost",
		Secondary:      format.Currency(r.MonthlySavings),
		SecondaryLabel: "Monthly Savings",
		Rating:         rateAtMost(r.EffectiveHousingCost, houseHackCostBands),
		PrimaryValue:   r.EffectiveHousingCost,
		SecondaryValue: r.MonthlySavings,
		Score:          score(savingsRatio),
	}
}

func evalWholesale(a assumption.Assumptions, r strategy.WholesaleResult) StrategyMetric {
	spreadRatio := 0.0
	if a.ARV != 0 {
		spreadRatio = r.SpreadFromPurchase / a.ARV
	}
	return StrategyMetric{
		Strategy:       strategy.Wholesale,
		Primary:        format.Currency(r.MAO),
		PrimaryLabel:   "Max Allowable Offer",
		Secondary:      format.Percent(r.PurchasePctOfARV, 1),
		SecondaryLabel: "Purchase % of ARV",
		Rating:         rateAtMost(r.PurchasePctOfARV, wholesalePctOfARVBands),
		PrimaryValue:   r.MAO,
		SecondaryValue: r.PurchasePctOfARV,
		Score:          score(spreadRatio),
	}
}
