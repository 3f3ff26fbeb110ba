// Package worksheet defines the flat over-the-wire payloads for the
// per-strategy calculate endpoints. On the wire every rate travels as a
// whole-number percent (5.6, not 0.056); in the core every rate is a
// fraction. The conversion lives here, in one place, because unit mismatches
// at this boundary are a known bug source and must stay unit-tested.
package worksheet

import (
	"math"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/strategy"
)

// Request is the flattened assumption subset the calculate endpoints accept.
type Request struct {
	PurchasePrice     float64 `json:"purchase_price"`
	BasePurchasePrice float64 `json:"base_purchase_price"`
	MonthlyRent       float64 `json:"monthly_rent"`
	AverageDailyRate  float64 `json:"average_daily_rate"`
	ARV               float64 `json:"arv"`
	RehabCost         float64 `json:"rehab_cost"`

	DownPaymentPercent  float64 `json:"down_payment_percent"`
	InterestRatePercent float64 `json:"interest_rate_percent"`
	LoanTermYears       int     `json:"loan_term_years"`
	ClosingCostsPercent float64 `json:"closing_costs_percent"`

	VacancyRatePercent float64 `json:"vacancy_rate_percent"`
	ManagementPercent  float64 `json:"management_percent"`
	MaintenancePercent float64 `json:"maintenance_percent"`
	PropertyTaxes      float64 `json:"property_taxes"`
	Insurance          float64 `json:"insurance"`

	OccupancyRatePercent float64 `json:"occupancy_rate_percent"`
	HoldingPeriodMonths  int     `json:"holding_period_months"`
	SellingCostsPercent  float64 `json:"selling_costs_percent"`
	RoomsRented          int     `json:"rooms_rented"`
	TotalBedrooms        int     `json:"total_bedrooms"`
	WholesaleFeePercent  float64 `json:"wholesale_fee_percent"`
}

// FromAssumptions flattens a snapshot into the wire shape, converting every
// fractional rate to a whole-number percent.
func FromAssumptions(a assumption.Assumptions) Request {
	return Request{
		PurchasePrice:     a.PurchasePrice,
		BasePurchasePrice: a.BasePurchasePrice,
		MonthlyRent:       a.MonthlyRent,
		AverageDailyRate:  a.AverageDailyRate,
		ARV:               a.ARV,
		RehabCost:         a.RehabCost,

		DownPaymentPercent:  a.DownPaymentPct * 100,
		InterestRatePercent: a.InterestRate * 100,
		LoanTermYears:       a.LoanTermYears,
		ClosingCostsPercent: a.ClosingCostsPct * 100,

		VacancyRatePercent: a.VacancyRate * 100,
		ManagementPercent:  a.ManagementPct * 100,
		MaintenancePercent: a.MaintenancePct * 100,
		PropertyTaxes:      a.PropertyTaxes,
		Insurance:          a.Insurance,

		OccupancyRatePercent: a.OccupancyRate * 100,
		HoldingPeriodMonths:  a.HoldingPeriodMonths,
		SellingCostsPercent:  a.SellingCostsPct * 100,
		RoomsRented:          a.RoomsRented,
		TotalBedrooms:        a.TotalBedrooms,
		WholesaleFeePercent:  a.WholesaleFeePct * 100,
	}
}

// ToAssumptions rebuilds a calculator-ready snapshot from the wire shape,
// converting whole-number percents back to fractions. The request carries
// computed values directly (there is no base/adjustment split on the wire),
// so the derived fields are taken as sent; derived fields absent from the
// wire (ARV from its pct, etc.) are already resolved by the client.
func (r Request) ToAssumptions() assumption.Assumptions {
	return assumption.Assumptions{
		BasePurchasePrice:    r.BasePurchasePrice,
		BaseMonthlyRent:      r.MonthlyRent,
		BaseAverageDailyRate: r.AverageDailyRate,

		PurchasePrice:    r.PurchasePrice,
		MonthlyRent:      r.MonthlyRent,
		AverageDailyRate: r.AverageDailyRate,
		ARV:              r.ARV,
		RehabCost:        r.RehabCost,
		ARVLink:          assumption.LinkBroken,

		DownPaymentPct:  r.DownPaymentPercent / 100,
		InterestRate:    r.InterestRatePercent / 100,
		LoanTermYears:   r.LoanTermYears,
		ClosingCostsPct: r.ClosingCostsPercent / 100,

		VacancyRate:    r.VacancyRatePercent / 100,
		ManagementPct:  r.ManagementPercent / 100,
		MaintenancePct: r.MaintenancePercent / 100,
		PropertyTaxes:  r.PropertyTaxes,
		Insurance:      r.Insurance,

		OccupancyRate:       r.OccupancyRatePercent / 100,
		HoldingPeriodMonths: r.HoldingPeriodMonths,
		SellingCostsPct:     r.SellingCostsPercent / 100,
		RoomsRented:         r.RoomsRented,
		TotalBedrooms:       r.TotalBedrooms,
		WholesaleFeePct:     r.WholesaleFeePercent / 100,
	}
}

// Flatten runs one calculator and flattens its result into the wire's flat
// numeric record. BRRRR's possibly-infinite cash-on-cash travels as a value
// plus flag because JSON cannot represent Inf.
func Flatten(name strategy.Name, a assumption.Assumptions) map[string]float64 {
	switch name {
	case strategy.LTR:
		r := strategy.CalculateLTR(a)
		return map[string]float64{
			"down_payment":        r.DownPayment,
			"closing_costs":       r.ClosingCosts,
			"loan_amount":         r.LoanAmount,
			"total_cash_required": r.TotalCashRequired,
			"monthly_payment":     r.MonthlyPayment,
			"annual_debt_service": r.AnnualDebtService,
			"annual_gross_rent":   r.AnnualGrossRent,
			"vacancy_loss":        r.VacancyLoss,
			"operating_expenses":  r.OperatingExpenses,
			"noi":                 r.NOI,
			"annual_cash_flow":    r.AnnualCashFlow,
			"monthly_cash_flow":   r.MonthlyCashFlow,
			"cap_rate":            r.CapRate,
			"cash_on_cash":        r.CashOnCash,
			"dscr":                r.DSCR,
			"one_percent_rule":    r.OnePercentRule,
		}
	case strategy.STR:
		r := strategy.CalculateSTR(a)
		return map[string]float64{
			"down_payment":        r.DownPayment,
			"closing_costs":       r.ClosingCosts,
			"loan_amount":         r.LoanAmount,
			"total_cash_required": r.TotalCashRequired,
			"monthly_payment":     r.MonthlyPayment,
			"annual_debt_service": r.AnnualDebtService,
			"annual_revenue":      r.AnnualRevenue,
			"management_fee":      r.ManagementFee,
			"platform_fee":        r.PlatformFee,
			"operating_expenses":  r.OperatingExpenses,
			"noi":                 r.NOI,
			"annual_cash_flow":    r.AnnualCashFlow,
			"monthly_cash_flow":   r.MonthlyCashFlow,
			"cap_rate":            r.CapRate,
			"cash_on_cash":        r.CashOnCash,
		}
	case strategy.BRRRR:
		r := strategy.CalculateBRRRR(a)
		flat := map[string]float64{
			"initial_cash":           r.InitialCash,
			"refinance_loan_amount":  r.RefinanceLoanAmount,
			"cash_back":              r.CashBack,
			"cash_left_in_deal":      r.CashLeftInDeal,
			"monthly_payment":        r.MonthlyPayment,
			"annual_debt_service":    r.AnnualDebtService,
			"noi":                    r.NOI,
			"annual_cash_flow":       r.AnnualCashFlow,
			"monthly_cash_flow":      r.MonthlyCashFlow,
			"equity_created":         r.EquityCreated,
			"cash_on_cash_infinite":  0,
		}
		if math.IsInf(r.CashOnCash, 1) {
			flat["cash_on_cash_infinite"] = 1
			flat["cash_on_cash"] = 0
		} else {
			flat["cash_on_cash"] = r.CashOnCash
		}
		return flat
	case strategy.Flip:
		r := strategy.CalculateFlip(a)
		passes := 0.0
		if r.Passes70Rule {
			passes = 1
		}
		return map[string]float64{
			"flip_margin":          r.FlipMargin,
			"max_purchase_70_rule": r.MaxPurchase70Rule,
			"passes_70_rule":       passes,
			"down_payment":         r.DownPayment,
			"loan_amount":          r.LoanAmount,
			"purchase_costs":       r.PurchaseCosts,
			"holding_costs":        r.HoldingCosts,
			"selling_costs":        r.SellingCosts,
			"total_cash_invested":  r.TotalCashInvested,
			"net_profit":           r.NetProfit,
			"roi":                  r.ROI,
			"annualized_roi":       r.AnnualizedROI,
		}
	case strategy.HouseHack:
		r := strategy.CalculateHouseHack(a)
		return map[string]float64{
			"total_bedrooms":         float64(r.TotalBedrooms),
			"rooms_rented":           float64(r.RoomsRented),
			"rent_per_room":          r.RentPerRoom,
			"down_payment":           r.DownPayment,
			"loan_amount":            r.LoanAmount,
			"monthly_payment":        r.MonthlyPayment,
			"monthly_rental_income":  r.MonthlyRentalIncome,
			"effective_housing_cost": r.EffectiveHousingCost,
			"market_rent":            r.MarketRent,
			"monthly_savings":        r.MonthlySavings,
		}
	case strategy.Wholesale:
		r := strategy.CalculateWholesale(a)
		below := 0.0
		if r.IsPurchaseBelowMAO {
			below = 1
		}
		return map[string]float64{
			"wholesale_fee":         r.WholesaleFee,
			"mao":                   r.MAO,
			"purchase_pct_of_arv":   r.PurchasePctOfARV,
			"is_purchase_below_mao": below,
			"spread_from_purchase":  r.SpreadFromPurchase,
		}
	}
	return nil
}
