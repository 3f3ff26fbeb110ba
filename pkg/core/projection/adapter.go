package projection

import "deal_analyzer/pkg/core/assumption"

// Growth defaults used when the caller has no market-specific view. Rent and
// value track long-run residential averages; expenses track general inflation.
const (
	defaultYears         = 30
	defaultRentGrowth    = 0.03
	defaultAppreciation  = 0.03
	defaultExpenseGrowth = 0.02
)

// BuildInput reshapes an assumptions snapshot into the horizon engine's
// input. years <= 0 selects the default 30-year horizon. The year-zero value
// starts at the after-repair value when rehab is planned, otherwise at market.
func BuildInput(a assumption.Assumptions, years int) Input {
	if years <= 0 {
		years = defaultYears
	}

	initialValue := a.BasePurchasePrice
	if a.RehabCost > 0 {
		initialValue = a.ARV
	}

	downPayment := a.PurchasePrice * a.DownPaymentPct

	return Input{
		Years: years,

		PurchasePrice:        a.PurchasePrice,
		ClosingCosts:         a.PurchasePrice * a.ClosingCostsPct,
		RehabCost:            a.RehabCost,
		InitialPropertyValue: initialValue,
		InitialMonthlyRent:   a.MonthlyRent,

		LoanAmount:    a.PurchasePrice - downPayment,
		InterestRate:  a.InterestRate,
		LoanTermYears: a.LoanTermYears,

		VacancyRate:    a.VacancyRate,
		ManagementPct:  a.ManagementPct,
		MaintenancePct: a.MaintenancePct,
		PropertyTaxes:  a.PropertyTaxes,
		Insurance:      a.Insurance,

		AnnualRentGrowth:    defaultRentGrowth,
		AnnualAppreciation:  defaultAppreciation,
		AnnualExpenseGrowth: defaultExpenseGrowth,
	}
}
