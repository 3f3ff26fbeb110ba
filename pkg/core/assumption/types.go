// Package assumption implements the canonical deal-assumption record and the
// derivation rules that keep its dependent fields consistent. State changes
// go through pure reducers (UpdateDirect, UpdateAdjustment, LoadProperty) so
// the derivation invariants stay checkable.
package assumption

// LinkState tracks the ARV/rehab relationship. The link starts active on
// every property load and breaks permanently the moment ARVPct is edited
// directly. It is a one-way latch, not a toggle.
type LinkState string

const (
	LinkActive LinkState = "ACTIVE"
	LinkBroken LinkState = "BROKEN"
)

// Key identifies a mutable assumption field for the reducers.
type Key string

const (
	// Adjustment keys, valid only for UpdateAdjustment.
	KeyPurchasePriceAdj    Key = "purchase_price_adj"
	KeyMonthlyRentAdj      Key = "monthly_rent_adj"
	KeyAverageDailyRateAdj Key = "average_daily_rate_adj"

	// Direct keys, valid only for UpdateDirect.
	KeyRehabCostPct        Key = "rehab_cost_pct"
	KeyARVPct              Key = "arv_pct"
	KeyDownPaymentPct      Key = "down_payment_pct"
	KeyInterestRate        Key = "interest_rate"
	KeyLoanTermYears       Key = "loan_term_years"
	KeyClosingCostsPct     Key = "closing_costs_pct"
	KeyVacancyRate         Key = "vacancy_rate"
	KeyManagementPct       Key = "management_pct"
	KeyMaintenancePct      Key = "maintenance_pct"
	KeyPropertyTaxes       Key = "property_taxes"
	KeyInsurance           Key = "insurance"
	KeyOccupancyRate       Key = "occupancy_rate"
	KeyHoldingPeriodMonths Key = "holding_period_months"
	KeySellingCostsPct     Key = "selling_costs_pct"
	KeyRoomsRented         Key = "rooms_rented"
	KeyTotalBedrooms       Key = "total_bedrooms"
	KeyWholesaleFeePct     Key = "wholesale_fee_pct"
)

// Assumptions is the single shared input record for all six strategy
// calculators. PurchasePrice, MonthlyRent, AverageDailyRate, ARV and
// RehabCost are derived; they are always recomputed from their drivers and
// never written directly.
//
// ARV and rehab are percentages of market value (BasePurchasePrice), not of
// the negotiated price, so Maximum-Allowable-Offer math stays stable while
// the user negotiates the purchase price.
type Assumptions struct {
	// Market anchors, set only on property load.
	BasePurchasePrice    float64 `json:"base_purchase_price"`
	BaseMonthlyRent      float64 `json:"base_monthly_rent"`
	BaseAverageDailyRate float64 `json:"base_average_daily_rate"`

	// Signed fractions in [-0.5, 0.5], "plus/minus 50% of base".
	PurchasePriceAdj    float64 `json:"purchase_price_adj"`
	MonthlyRentAdj      float64 `json:"monthly_rent_adj"`
	AverageDailyRateAdj float64 `json:"average_daily_rate_adj"`

	// Derived: round(base * (1 + adj)).
	PurchasePrice    float64 `json:"purchase_price"`
	MonthlyRent      float64 `json:"monthly_rent"`
	AverageDailyRate float64 `json:"average_daily_rate"`

	ARVPct       float64   `json:"arv_pct"`        // fraction in [0, 1], above market value
	ARV          float64   `json:"arv"`            // derived
	RehabCostPct float64   `json:"rehab_cost_pct"` // fraction in [0, 0.5], of market value
	RehabCost    float64   `json:"rehab_cost"`     // derived
	ARVLink      LinkState `json:"arv_link"`

	// Financing terms.
	DownPaymentPct  float64 `json:"down_payment_pct"`
	InterestRate    float64 `json:"interest_rate"` // fraction, e.g. 0.056
	LoanTermYears   int     `json:"loan_term_years"`
	ClosingCostsPct float64 `json:"closing_costs_pct"`

	// Operating assumptions.
	VacancyRate    float64 `json:"vacancy_rate"`
	ManagementPct  float64 `json:"management_pct"`
	MaintenancePct float64 `json:"maintenance_pct"`
	PropertyTaxes  float64 `json:"property_taxes"` // annual $
	Insurance      float64 `json:"insurance"`      // annual $

	// Strategy-specific.
	OccupancyRate       float64 `json:"occupancy_rate"`        // STR
	HoldingPeriodMonths int     `json:"holding_period_months"` // flip
	SellingCostsPct     float64 `json:"selling_costs_pct"`     // flip
	RoomsRented         int     `json:"rooms_rented"`          // house-hack
	TotalBedrooms       int     `json:"total_bedrooms"`        // house-hack
	WholesaleFeePct     float64 `json:"wholesale_fee_pct"`     // wholesale
}
