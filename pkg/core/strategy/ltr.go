package strategy

import "deal_analyzer/pkg/core/assumption"

// LTRResult holds the long-term-rental worksheet outputs.
type LTRResult struct {
	DownPayment       float64 `json:"down_payment"`
	ClosingCosts      float64 `json:"closing_costs"`
	LoanAmount        float64 `json:"loan_amount"`
	TotalCashRequired float64 `json:"total_cash_required"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	AnnualDebtService float64 `json:"annual_debt_service"`

	AnnualGrossRent   float64 `json:"annual_gross_rent"`
	VacancyLoss       float64 `json:"vacancy_loss"`
	OperatingExpenses float64 `json:"operating_expenses"`
	NOI               float64 `json:"noi"`
	AnnualCashFlow    float64 `json:"annual_cash_flow"`
	MonthlyCashFlow   float64 `json:"monthly_cash_flow"`

	CapRate        float64 `json:"cap_rate"`
	CashOnCash     float64 `json:"cash_on_cash"`
	DSCR           float64 `json:"dscr"`
	OnePercentRule float64 `json:"one_percent_rule"`
}

// CalculateLTR runs the long-term-rental formula set. All ratios fall back to
// 0 when their denominator is 0 (a $0 purchase price never yields NaN/Inf).
func CalculateLTR(a assumption.Assumptions) LTRResult {
	f := financingFor(a)

	grossRent := a.MonthlyRent * 12
	vacancyLoss := grossRent * a.VacancyRate
	opEx := a.PropertyTaxes + a.Insurance +
		grossRent*a.ManagementPct + grossRent*a.MaintenancePct
	noi := (grossRent - vacancyLoss) - opEx
	annualCashFlow := noi - f.AnnualDebtService

	return LTRResult{
		DownPayment:       f.DownPayment,
		ClosingCosts:      f.ClosingCosts,
		LoanAmount:        f.LoanAmount,
		TotalCashRequired: f.TotalCashRequired,
		MonthlyPayment:    f.MonthlyPayment,
		AnnualDebtService: f.AnnualDebtService,

		AnnualGrossRent:   grossRent,
		VacancyLoss:       vacancyLoss,
		OperatingExpenses: opEx,
		NOI:               noi,
		AnnualCashFlow:    annualCashFlow,
		MonthlyCashFlow:   annualCashFlow / 12,

		CapRate:        safeDiv(noi, a.PurchasePrice),
		CashOnCash:     safeDiv(annualCashFlow, f.TotalCashRequired),
		DSCR:           safeDiv(noi, f.AnnualDebtService),
		OnePercentRule: safeDiv(a.MonthlyRent, a.PurchasePrice),
	}
}
