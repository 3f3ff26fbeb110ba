// Package property models the upstream property feed record and parses the
// lenient JSON it arrives in. A zero value on any field means the feed
// omitted it; fallback policy lives with the assumption loader, not here.
package property

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

func (a Address) String() string {
	if a.Street == "" {
		return ""
	}
	return a.Street + ", " + a.City + ", " + a.State + " " + a.Zip
}

type Details struct {
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	SquareFootage int      `json:"square_footage"`
	YearBuilt     int      `json:"year_built"`
	Features      []string `json:"features"`
}

type Valuations struct {
	Zestimate        float64 `json:"zestimate"`
	CurrentValueAVM  float64 `json:"current_value_avm"`
	ARV              float64 `json:"arv"`
	ZestimateHighPct float64 `json:"zestimate_high_pct"` // whole percent, e.g. 20
}

type Rentals struct {
	AverageRent      float64 `json:"average_rent"`
	MonthlyRentLTR   float64 `json:"monthly_rent_ltr"`
	AverageDailyRate float64 `json:"average_daily_rate"`
	OccupancyRate    float64 `json:"occupancy_rate"` // fraction or whole percent
}

type Market struct {
	PropertyTaxesAnnual float64 `json:"property_taxes_annual"`
	MortgageRateARM5    float64 `json:"mortgage_rate_arm5"`
	MortgageRate30Yr    float64 `json:"mortgage_rate_30yr"`
}

// Data is one property record from the feed.
type Data struct {
	Address    Address    `json:"address"`
	Details    Details    `json:"details"`
	Valuations Valuations `json:"valuations"`
	Rentals    Rentals    `json:"rentals"`
	Market     Market     `json:"market"`
}
