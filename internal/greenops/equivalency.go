// Package greenops turns abstract footprint totals (kg CO2e per month)
// into relatable context: tree-absorption equivalents and distance from
// a sustainable monthly target.
package greenops

import (
	"fmt"
	"math"
)

// Reference constants.
const (
	// TreeAbsorptionKgPerYear is the CO2 absorbed by one mature tree in
	// a year.
	TreeAbsorptionKgPerYear = 21.77

	// SustainableTargetKgPerMonth is the widely used ~2 t CO2e/year
	// individual budget, expressed monthly.
	SustainableTargetKgPerMonth = 167.0

	// MinDisplayThresholdKg is the minimum footprint for which
	// equivalencies are shown. Below it the numbers are meaningless
	// noise.
	MinDisplayThresholdKg = 0.1
)

// Equivalency is the relatable-context bundle for one monthly total.
type Equivalency struct {
	// InputKg is the monthly footprint the equivalency was computed for.
	InputKg float64 `json:"input_kg"`

	// Trees is the number of trees whose monthly absorption matches
	// the footprint.
	Trees float64 `json:"trees"`

	// TargetRatio is the footprint divided by the sustainable monthly
	// target. 1.0 means exactly on budget.
	TargetRatio float64 `json:"target_ratio"`

	// DisplayText is the prose form for the results view and report.
	DisplayText string `json:"display_text"`

	// IsEmpty is true when the input was below the display threshold.
	IsEmpty bool `json:"is_empty"`
}

// ForMonthlyTotal computes the equivalency bundle for a monthly
// footprint in kg CO2e. Negative input is rejected; values below the
// display threshold yield an empty bundle.
func ForMonthlyTotal(kg float64) (Equivalency, error) {
	if kg < 0 || math.IsNaN(kg) {
		return Equivalency{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinDisplayThresholdKg {
		return Equivalency{InputKg: kg, IsEmpty: true}, nil
	}

	monthlyAbsorption := TreeAbsorptionKgPerYear / 12.0
	trees := kg / monthlyAbsorption
	ratio := kg / SustainableTargetKgPerMonth

	return Equivalency{
		InputKg:     kg,
		Trees:       trees,
		TargetRatio: ratio,
		DisplayText: fmt.Sprintf("Equivalent to the CO₂ absorbed by %.1f trees in a month", trees),
	}, nil
}
