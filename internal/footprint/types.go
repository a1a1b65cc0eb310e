// Package footprint implements the emission aggregation and comparison
// pipeline: it turns raw per-activity quantities into a validated grand
// total, a category breakdown, a top-activity ranking, and a peer
// comparison against country, regional, and global baselines.
package footprint

import "github.com/keanyaoha/greenprint/internal/catalog"

// ActivityEmission is one activity's contribution to the footprint.
type ActivityEmission struct {
	// ActivityID is the catalog identifier.
	ActivityID string `json:"activity_id"`

	// Emission is the computed kg CO2e (quantity × factor).
	Emission float64 `json:"emission"`
}

// Result is the finished aggregation bundle consumed by the comparison
// engine, the results view, and the report assembler.
type Result struct {
	// Country is the factor-table country the result was computed for.
	// A Result is never attributable to any other country.
	Country string `json:"country"`

	// GrandTotal is the sum of all positive per-activity emissions,
	// in kg CO2e per month.
	GrandTotal float64 `json:"grand_total"`

	// CategoryTotals holds only categories with a positive total.
	CategoryTotals map[catalog.Category]float64 `json:"category_totals"`

	// TopActivities lists up to ten positive contributors, sorted
	// descending by emission, ties broken by catalog declaration order.
	TopActivities []ActivityEmission `json:"top_activities"`
}

// Empty reports whether aggregation produced no positive contribution.
// This is an informational state, not a failure.
func (r *Result) Empty() bool {
	return r.GrandTotal <= 0
}

// Classification qualifies a grand total against the world average.
type Classification int

const (
	// ClassificationUnknown means the world baseline was unavailable.
	// It is never silently collapsed into AtOrBelow.
	ClassificationUnknown Classification = iota

	// ClassificationAbove means the grand total strictly exceeds the
	// world average.
	ClassificationAbove

	// ClassificationAtOrBelow means the grand total is at or below the
	// world average.
	ClassificationAtOrBelow
)

// String returns a human-readable classification label.
func (c Classification) String() string {
	switch c {
	case ClassificationAbove:
		return "above world average"
	case ClassificationAtOrBelow:
		return "at or below world average"
	case ClassificationUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// ComparisonEntry is one candidate bar of the peer comparison.
type ComparisonEntry struct {
	// Label is the display name ("Germany", "EU Average", "World Average").
	Label string `json:"label"`

	// Average is the monthly per-capita baseline, nil when the
	// reference data has no entry for this peer.
	Average *float64 `json:"average,omitempty"`
}

// Comparison is the comparison engine output.
type Comparison struct {
	// Entries holds exactly three candidates in fixed order: selected
	// country, regional aggregate, global aggregate.
	Entries []ComparisonEntry `json:"entries"`

	// Classification qualifies the grand total against the world
	// average.
	Classification Classification `json:"classification"`

	// Notes records out-of-band remarks about unavailable baselines.
	// The caller decides whether and how to render them.
	Notes []string `json:"notes,omitempty"`
}
