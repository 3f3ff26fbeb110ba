package strategy

import (
	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/finance"
)

// House-hack financing is FHA owner-occupied: 3.5% down regardless of the
// shared DownPaymentPct assumption. Market rent for the owner's alternative
// is estimated at a 20% premium over the per-room rate.
const (
	houseHackDownPct       = 0.035
	houseHackMarketPremium = 1.2
)

// HouseHackResult holds the house-hack outputs. A negative
// EffectiveHousingCost is a valid, meaningful state (living for free and
// profiting) and is never clamped to zero.
type HouseHackResult struct {
	TotalBedrooms int     `json:"total_bedrooms"`
	RoomsRented   int     `json:"rooms_rented"`
	RentPerRoom   float64 `json:"rent_per_room"`

	DownPayment         float64 `json:"down_payment"`
	LoanAmount          float64 `json:"loan_amount"`
	MonthlyPayment      float64 `json:"monthly_payment"`
	MonthlyRentalIncome float64 `json:"monthly_rental_income"`

	EffectiveHousingCost float64 `json:"effective_housing_cost"`
	MarketRent           float64 `json:"market_rent"`
	MonthlySavings       float64 `json:"monthly_savings"`
}

// CalculateHouseHack runs the house-hack formula set. Bedrooms default to 4
// when unset and the owner always keeps at least one room.
func CalculateHouseHack(a assumption.Assumptions) HouseHackResult {
	bedrooms := a.TotalBedrooms
	if bedrooms <= 0 {
		bedrooms = 4
	}
	rooms := a.RoomsRented
	if rooms <= 0 {
		rooms = bedrooms - 1
		if rooms < 1 {
			rooms = 1
		}
	}

	rentPerRoom := safeDiv(a.MonthlyRent, float64(bedrooms))
	rentalIncome := rentPerRoom * float64(rooms)

	downPayment := a.PurchasePrice * houseHackDownPct
	loanAmount := a.PurchasePrice - downPayment
	var monthlyPI float64
	if a.LoanTermYears > 0 && loanAmount > 0 {
		monthlyPI = finance.MonthlyPayment(loanAmount, a.InterestRate, a.LoanTermYears)
	}

	vacancy := rentalIncome * a.VacancyRate
	maintenance := rentalIncome * a.MaintenancePct
	effectiveCost := (monthlyPI + a.PropertyTaxes/12 + a.Insurance/12 + vacancy + maintenance) -
		rentalIncome

	marketRent := rentPerRoom * houseHackMarketPremium

	return HouseHackResult{
		TotalBedrooms: bedrooms,
		RoomsRented:   rooms,
		RentPerRoom:   rentPerRoom,

		DownPayment:         downPayment,
		LoanAmount:          loanAmount,
		MonthlyPayment:      monthlyPI,
		MonthlyRentalIncome: rentalIncome,

		EffectiveHousingCost: effectiveCost,
		MarketRent:           marketRent,
		MonthlySavings:       marketRent - effectiveCost,
	}
}
