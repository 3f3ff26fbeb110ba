package strategy

import (
	"math"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/finance"
)

// BRRRR deal structure: 30% cash in at purchase, refinance at 75% of ARV,
// original acquisition debt assumed at 70% of purchase price.
const (
	brrrrInitialCashPct = 0.30
	brrrrRefiLTV        = 0.75
	brrrrAcquisitionLTV = 0.70
)

// BRRRRResult holds the buy-rehab-rent-refinance-repeat outputs.
//
// CashOnCash is +Inf when no cash is left in the deal. That is the documented
// "infinite return" state, not an error; consumers must preserve it and
// render it distinctly.
type BRRRRResult struct {
	InitialCash         float64 `json:"initial_cash"`
	RefinanceLoanAmount float64 `json:"refinance_loan_amount"`
	CashBack            float64 `json:"cash_back"`
	CashLeftInDeal      float64 `json:"cash_left_in_deal"`

	MonthlyPayment    float64 `json:"monthly_payment"`
	AnnualDebtService float64 `json:"annual_debt_service"`
	NOI               float64 `json:"noi"`
	AnnualCashFlow    float64 `json:"annual_cash_flow"`
	MonthlyCashFlow   float64 `json:"monthly_cash_flow"`

	// Excluded from JSON because encoding/json cannot represent +Inf; the
	// worksheet flattener carries it as value + infinite flag.
	CashOnCash    float64 `json:"-"`
	EquityCreated float64 `json:"equity_created"`
}

// CalculateBRRRR runs the BRRRR formula set. Debt service is computed on the
// refinance loan; income uses the post-rehab rent with the same operating
// expense set as the LTR worksheet.
func CalculateBRRRR(a assumption.Assumptions) BRRRRResult {
	initialCash := a.PurchasePrice*brrrrInitialCashPct + a.RehabCost +
		a.PurchasePrice*a.ClosingCostsPct
	refiLoan := a.ARV * brrrrRefiLTV
	cashBack := refiLoan - a.PurchasePrice*brrrrAcquisitionLTV
	cashLeft := math.Max(0, initialCash-cashBack)

	var monthlyPayment float64
	if a.LoanTermYears > 0 && refiLoan > 0 {
		monthlyPayment = finance.MonthlyPayment(refiLoan, a.InterestRate, a.LoanTermYears)
	}
	annualDebtService := monthlyPayment * 12

	grossRent := a.MonthlyRent * 12
	noi := (grossRent - grossRent*a.VacancyRate) -
		(a.PropertyTaxes + a.Insurance + grossRent*a.ManagementPct + grossRent*a.MaintenancePct)
	annualCashFlow := noi - annualDebtService

	coc := math.Inf(1)
	if cashLeft > 0 {
		coc = annualCashFlow / cashLeft
	}

	return BRRRRResult{
		InitialCash:         initialCash,
		RefinanceLoanAmount: refiLoan,
		CashBack:            cashBack,
		CashLeftInDeal:      cashLeft,

		MonthlyPayment:    monthlyPayment,
		AnnualDebtService: annualDebtService,
		NOI:               noi,
		AnnualCashFlow:    annualCashFlow,
		MonthlyCashFlow:   annualCashFlow / 12,

		CashOnCash:    coc,
		EquityCreated: a.ARV - refiLoan,
	}
}
