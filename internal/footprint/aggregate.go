package footprint

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/logging"
	"github.com/keanyaoha/greenprint/internal/refdata"
)

// TopActivityLimit caps the top-contributor ranking.
const TopActivityLimit = 10

// Engine computes footprints against an immutable reference store and
// activity catalog. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	store   *refdata.Store
	catalog *catalog.Catalog
}

// NewEngine creates an Engine over the given store and catalog.
func NewEngine(store *refdata.Store, cat *catalog.Catalog) *Engine {
	return &Engine{store: store, catalog: cat}
}

// Aggregate converts user-entered quantities into a Result for country.
//
// Quantities default to zero for activities absent from inputs; input
// keys outside the catalog are ignored. A missing factor for a valid
// country contributes zero rather than failing. An unknown country is
// rejected with ErrUnknownCountry before any computation.
//
// The function is pure: it reads the store and catalog and mutates
// neither, so recalculation on every edit is safe and cheap.
func (e *Engine) Aggregate(ctx context.Context, inputs map[string]float64, country string) (*Result, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if !e.store.HasCountry(country) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}

	result := &Result{
		Country:        country,
		CategoryTotals: make(map[catalog.Category]float64),
	}

	var positive []ActivityEmission
	for _, id := range e.catalog.Activities() {
		quantity := inputs[id]
		if quantity <= 0 || math.IsNaN(quantity) {
			continue
		}

		factor, ok := e.store.Factor(id, country)
		if !ok {
			// Expected sparsity: this country has no factor for the
			// activity, so it contributes nothing.
			continue
		}

		emission := quantity * factor
		if emission <= 0 {
			continue
		}

		cat, _ := e.catalog.CategoryOf(id)
		result.CategoryTotals[cat] += emission
		result.GrandTotal += emission
		positive = append(positive, ActivityEmission{ActivityID: id, Emission: emission})
	}

	// Categories accumulate only positive contributions, so a total can
	// never be negative; drop the impossible-but-guarded zero case to
	// keep the breakdown free of empty bars.
	for cat, total := range result.CategoryTotals {
		if total <= 0 {
			delete(result.CategoryTotals, cat)
		}
	}

	// positive is built in catalog declaration order, so a stable sort
	// keeps declaration order as the tie-break.
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Emission > positive[j].Emission
	})
	if len(positive) > TopActivityLimit {
		positive = positive[:TopActivityLimit]
	}
	result.TopActivities = positive

	log.Debug().
		Str("component", "footprint").
		Str("operation", "aggregate").
		Str("country", country).
		Float64("grand_total", result.GrandTotal).
		Int("positive_activities", len(positive)).
		Int64("duration_us", time.Since(start).Microseconds()).
		Msg("aggregation complete")

	return result, nil
}
