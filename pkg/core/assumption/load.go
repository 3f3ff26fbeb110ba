package assumption

import "deal_analyzer/pkg/core/property"

// Defaults applied on every property load regardless of what the feed says.
const (
	defaultPurchasePriceAdj = -0.10
	defaultDownPaymentPct   = 0.30
	defaultVacancyRate      = 0.03
	defaultManagementPct    = 0.00
	defaultMaintenancePct   = 0.05
	defaultRehabCostPct     = 0.05
	defaultWholesaleFeePct  = 0.007
	defaultLoanTermYears    = 30
	defaultClosingCostsPct  = 0.03
	defaultInsurance        = 1500
	defaultHoldingMonths    = 6
	defaultSellingCostsPct  = 0.06
)

// Fallbacks for fields the feed may omit entirely.
const (
	fallbackPurchasePrice = 425000
	fallbackMonthlyRent   = 2100
	fallbackDailyRate     = 250
	fallbackARVPct        = 0.20
	fallbackInterestRate  = 0.056
	fallbackPropertyTaxes = 4500
	fallbackOccupancy     = 0.65
	fallbackBedrooms      = 4
)

func firstPositive(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

// normalizeRate accepts rates reported either as a whole-number percent
// (5.6) or a decimal fraction (0.056) and returns the fraction.
func normalizeRate(rate float64) float64 {
	if rate > 1 {
		return rate / 100
	}
	return rate
}

// LoadProperty builds a fresh Assumptions record from upstream property data
// in one atomic transition: base values from the feed's fallback chains, the
// purchase-price adjustment reset to its default discount, the ARV/rehab link
// re-armed, and every computed field rebuilt from scratch.
func LoadProperty(d *property.Data) Assumptions {
	if d == nil {
		d = &property.Data{}
	}

	arvPct := fallbackARVPct
	if d.Valuations.ZestimateHighPct > 0 {
		arvPct = d.Valuations.ZestimateHighPct / 100
	}

	rate := firstPositive(d.Market.MortgageRate30Yr, d.Market.MortgageRateARM5, fallbackInterestRate)

	bedrooms := d.Details.Bedrooms
	if bedrooms <= 0 {
		bedrooms = fallbackBedrooms
	}
	rooms := bedrooms - 1
	if rooms < 1 {
		rooms = 1
	}

	a := Assumptions{
		BasePurchasePrice: firstPositive(d.Valuations.Zestimate, d.Valuations.CurrentValueAVM,
			d.Valuations.ARV, fallbackPurchasePrice),
		BaseMonthlyRent:      firstPositive(d.Rentals.AverageRent, d.Rentals.MonthlyRentLTR, fallbackMonthlyRent),
		BaseAverageDailyRate: firstPositive(d.Rentals.AverageDailyRate, fallbackDailyRate),

		PurchasePriceAdj:    defaultPurchasePriceAdj,
		MonthlyRentAdj:      0,
		AverageDailyRateAdj: 0,

		ARVPct:       arvPct,
		RehabCostPct: defaultRehabCostPct,
		ARVLink:      LinkActive,

		DownPaymentPct:  defaultDownPaymentPct,
		InterestRate:    normalizeRate(rate),
		LoanTermYears:   defaultLoanTermYears,
		ClosingCostsPct: defaultClosingCostsPct,

		VacancyRate:    defaultVacancyRate,
		ManagementPct:  defaultManagementPct,
		MaintenancePct: defaultMaintenancePct,
		PropertyTaxes:  firstPositive(d.Market.PropertyTaxesAnnual, fallbackPropertyTaxes),
		Insurance:      defaultInsurance,

		OccupancyRate:       normalizeRate(firstPositive(d.Rentals.OccupancyRate, fallbackOccupancy)),
		HoldingPeriodMonths: defaultHoldingMonths,
		SellingCostsPct:     defaultSellingCostsPct,
		RoomsRented:         rooms,
		TotalBedrooms:       bedrooms,
		WholesaleFeePct:     defaultWholesaleFeePct,
	}

	return Recompute(a)
}
