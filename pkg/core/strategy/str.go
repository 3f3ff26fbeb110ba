package strategy

import "deal_analyzer/pkg/core/assumption"

// Short-term-rental cost structure. Management and platform fees are fixed
// fractions of revenue; utilities and supplies are flat annual figures.
const (
	strManagementPct   = 0.20
	strPlatformFeePct  = 0.03
	strAnnualUtilities = 3600.0
	strAnnualSupplies  = 2400.0
)

// STRResult holds the short-term-rental worksheet outputs.
type STRResult struct {
	DownPayment       float64 `json:"down_payment"`
	ClosingCosts      float64 `json:"closing_costs"`
	LoanAmount        float64 `json:"loan_amount"`
	TotalCashRequired float64 `json:"total_cash_required"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	AnnualDebtService float64 `json:"annual_debt_service"`

	AnnualRevenue     float64 `json:"annual_revenue"`
	ManagementFee     float64 `json:"management_fee"`
	PlatformFee       float64 `json:"platform_fee"`
	OperatingExpenses float64 `json:"operating_expenses"`
	NOI               float64 `json:"noi"`
	AnnualCashFlow    float64 `json:"annual_cash_flow"`
	MonthlyCashFlow   float64 `json:"monthly_cash_flow"`

	CapRate    float64 `json:"cap_rate"`
	CashOnCash float64 `json:"cash_on_cash"`
}

// CalculateSTR runs the short-term-rental formula set. Vacancy is inherent in
// the occupancy rate, so no separate vacancy loss applies; property taxes and
// insurance are deducted the same way the LTR worksheet does.
func CalculateSTR(a assumption.Assumptions) STRResult {
	f := financingFor(a)

	revenue := a.AverageDailyRate * 365 * a.OccupancyRate
	mgmtFee := revenue * strManagementPct
	platformFee := revenue * strPlatformFeePct
	opEx := mgmtFee + platformFee + strAnnualUtilities + strAnnualSupplies +
		revenue*a.MaintenancePct + a.PropertyTaxes + a.Insurance
	noi := revenue - opEx
	annualCashFlow := noi - f.AnnualDebtService

	return STRResult{
		DownPayment:       f.DownPayment,
		ClosingCosts:      f.ClosingCosts,
		LoanAmount:        f.LoanAmount,
		TotalCashRequired: f.TotalCashRequired,
		MonthlyPayment:    f.MonthlyPayment,
		AnnualDebtService: f.AnnualDebtService,

		AnnualRevenue:     revenue,
		ManagementFee:     mgmtFee,
		PlatformFee:       platformFee,
		OperatingExpenses: opEx,
		NOI:               noi,
		AnnualCashFlow:    annualCashFlow,
		MonthlyCashFlow:   annualCashFlow / 12,

		CapRate:    safeDiv(noi, a.PurchasePrice),
		CashOnCash: safeDiv(annualCashFlow, f.TotalCashRequired),
	}
}
