// Package projection reshapes a deal-assumption snapshot into the input the
// multi-year horizon engine consumes. The engine itself runs elsewhere; this
// package only owns the adapter.
package projection

// Input is the horizon engine's input shape: the year-zero position plus the
// per-year growth drivers seeded from the deal assumptions.
type Input struct {
	Years int `json:"years"`

	// Year-zero position.
	PurchasePrice        float64 `json:"purchase_price"`
	ClosingCosts         float64 `json:"closing_costs"`
	RehabCost            float64 `json:"rehab_cost"`
	InitialPropertyValue float64 `json:"initial_property_value"`
	InitialMonthlyRent   float64 `json:"initial_monthly_rent"`

	// Financing carried through the horizon.
	LoanAmount    float64 `json:"loan_amount"`
	InterestRate  float64 `json:"interest_rate"`
	LoanTermYears int     `json:"loan_term_years"`

	// Operating ratios held constant per year.
	VacancyRate    float64 `json:"vacancy_rate"`
	ManagementPct  float64 `json:"management_pct"`
	MaintenancePct float64 `json:"maintenance_pct"`
	PropertyTaxes  float64 `json:"property_taxes"`
	Insurance      float64 `json:"insurance"`

	// Growth drivers.
	AnnualRentGrowth    float64 `json:"annual_rent_growth"`
	AnnualAppreciation  float64 `json:"annual_appreciation"`
	AnnualExpenseGrowth float64 `json:"annual_expense_growth"`
}
