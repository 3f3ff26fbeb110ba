// Package strategy implements the six investment-strategy calculators. Each
// calculator is a pure function of one Assumptions snapshot; results are flat
// records recomputed in full on every call and never mutated afterwards.
//
// Failure semantics: no calculator errors on numeric input. Every division
// guards its denominator and substitutes a defined fallback (0, or +Inf for
// the one documented BRRRR case).
package strategy

import "deal_analyzer/pkg/core/assumption"

// Name identifies a strategy. The string values double as the URL segment of
// the worksheet calculate endpoints.
type Name string

const (
	LTR       Name = "ltr"
	STR       Name = "str"
	BRRRR     Name = "brrrr"
	Flip      Name = "flip"
	HouseHack Name = "househack"
	Wholesale Name = "wholesale"
)

// All lists the strategies in registry order. Ranking ties resolve in this
// order, keeping best-strategy selection deterministic run-to-run.
var All = []Name{LTR, STR, BRRRR, Flip, HouseHack, Wholesale}

// Valid reports whether n names a known strategy.
func Valid(n Name) bool {
	for _, s := range All {
		if s == n {
			return true
		}
	}
	return false
}

// Results bundles one run of all six calculators over a single snapshot.
type Results struct {
	LTR       LTRResult       `json:"ltr"`
	STR       STRResult       `json:"str"`
	BRRRR     BRRRRResult     `json:"brrrr"`
	Flip      FlipResult      `json:"flip"`
	HouseHack HouseHackResult `json:"househack"`
	Wholesale WholesaleResult `json:"wholesale"`
}

// CalculateAll re-runs every calculator against the snapshot. Cheap plain
// arithmetic, safe to call on every slider drag.
func CalculateAll(a assumption.Assumptions) Results {
	return Results{
		LTR:       CalculateLTR(a),
		STR:       CalculateSTR(a),
		BRRRR:     CalculateBRRRR(a),
		Flip:      CalculateFlip(a),
		HouseHack: CalculateHouseHack(a),
		Wholesale: CalculateWholesale(a),
	}
}
