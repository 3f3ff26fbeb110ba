package assumption

import "math"

func round(v float64) float64 { return math.Round(v) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// UpdateAdjustment applies one of the three slider adjustments. The value is
// clamped to [-0.5, 0.5] and the paired computed value is re-derived from its
// base. RehabCost and ARV are deliberately untouched: they are pinned to
// market value, not to the negotiated price.
func UpdateAdjustment(a Assumptions, key Key, value float64) Assumptions {
	value = clamp(value, -0.5, 0.5)
	switch key {
	case KeyPurchasePriceAdj:
		a.PurchasePriceAdj = value
		a.PurchasePrice = round(a.BasePurchasePrice * (1 + value))
	case KeyMonthlyRentAdj:
		a.MonthlyRentAdj = value
		a.MonthlyRent = round(a.BaseMonthlyRent * (1 + value))
	case KeyAverageDailyRateAdj:
		a.AverageDailyRateAdj = value
		a.AverageDailyRate = round(a.BaseAverageDailyRate * (1 + value))
	}
	return a
}

// UpdateDirect sets a non-adjustment field and applies its secondary effects:
//
//   - RehabCostPct re-derives RehabCost and, while the link is active, drives
//     ARVPct = 2 x RehabCostPct (the 1:2 rehab-to-appreciation heuristic).
//   - ARVPct breaks the link permanently for the session, then re-derives ARV.
//   - Every other key has no secondary effects.
//
// Unknown keys return the state unchanged.
func UpdateDirect(a Assumptions, key Key, value float64) Assumptions {
	switch key {
	case KeyRehabCostPct:
		value = clamp(value, 0, 0.5)
		a.RehabCostPct = value
		a.RehabCost = round(a.BasePurchasePrice * value)
		if a.ARVLink == LinkActive {
			a.ARVPct = value * 2
			a.ARV = round(a.BasePurchasePrice * (1 + a.ARVPct))
		}
	case KeyARVPct:
		value = clamp(value, 0, 1)
		a.ARVLink = LinkBroken
		a.ARVPct = value
		a.ARV = round(a.BasePurchasePrice * (1 + value))
	case KeyDownPaymentPct:
		a.DownPaymentPct = value
	case KeyInterestRate:
		a.InterestRate = value
	case KeyLoanTermYears:
		a.LoanTermYears = int(value)
	case KeyClosingCostsPct:
		a.ClosingCostsPct = value
	case KeyVacancyRate:
		a.VacancyRate = value
	case KeyManagementPct:
		a.ManagementPct = value
	case KeyMaintenancePct:
		a.MaintenancePct = value
	case KeyPropertyTaxes:
		a.PropertyTaxes = value
	case KeyInsurance:
		a.Insurance = value
	case KeyOccupancyRate:
		a.OccupancyRate = value
	case KeyHoldingPeriodMonths:
		a.HoldingPeriodMonths = int(value)
	case KeySellingCostsPct:
		a.SellingCostsPct = value
	case KeyRoomsRented:
		a.RoomsRented = int(value)
	case KeyTotalBedrooms:
		a.TotalBedrooms = int(value)
	case KeyWholesaleFeePct:
		a.WholesaleFeePct = value
	}
	return a
}

// Recompute rebuilds every derived field from its drivers. The reducers keep
// derived fields in sync incrementally; Recompute is the full rebuild used on
// load and by tests asserting the derivation invariant.
func Recompute(a Assumptions) Assumptions {
	a.PurchasePrice = round(a.BasePurchasePrice * (1 + a.PurchasePriceAdj))
	a.MonthlyRent = round(a.BaseMonthlyRent * (1 + a.MonthlyRentAdj))
	a.AverageDailyRate = round(a.BaseAverageDailyRate * (1 + a.AverageDailyRateAdj))
	a.ARV = round(a.BasePurchasePrice * (1 + a.ARVPct))
	a.RehabCost = round(a.BasePurchasePrice * a.RehabCostPct)
	return a
}
