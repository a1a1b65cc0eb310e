package footprint

import (
	"context"
	"fmt"

	"github.com/keanyaoha/greenprint/internal/logging"
)

// Fixed peer aggregate identifiers in the baseline table, and their
// display labels.
const (
	regionalAggregateKey   = "European Union (27)"
	regionalAggregateLabel = "EU Average"
	globalAggregateKey     = "World"
	globalAggregateLabel   = "World Average"
)

// Compare produces the three peer comparison entries for grandTotal in
// fixed candidate order: the selected country, the regional aggregate,
// and the global aggregate.
//
// A peer without a baseline is still returned, with a nil average and a
// note appended to the out-of-band notes list — never an error. The
// classification is Unknown whenever the global baseline is missing; it
// never silently defaults to at-or-below.
func (e *Engine) Compare(ctx context.Context, grandTotal float64, country string) (*Comparison, error) {
	log := logging.FromContext(ctx)

	if !e.store.HasCountry(country) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}

	cmp := &Comparison{Classification: ClassificationUnknown}

	candidates := []struct {
		key   string
		label string
	}{
		{key: country, label: country},
		{key: regionalAggregateKey, label: regionalAggregateLabel},
		{key: globalAggregateKey, label: globalAggregateLabel},
	}

	for _, c := range candidates {
		entry := ComparisonEntry{Label: c.label}
		if avg, ok := e.store.Baseline(c.key); ok {
			value := avg
			entry.Average = &value
		} else {
			cmp.Notes = append(cmp.Notes, fmt.Sprintf("Average data for %s not available.", c.label))
		}
		cmp.Entries = append(cmp.Entries, entry)
	}

	if worldAvg := cmp.Entries[2].Average; worldAvg != nil {
		if grandTotal > *worldAvg {
			cmp.Classification = ClassificationAbove
		} else {
			cmp.Classification = ClassificationAtOrBelow
		}
	}

	log.Debug().
		Str("component", "footprint").
		Str("operation", "compare").
		Str("country", country).
		Float64("grand_total", grandTotal).
		Str("classification", cmp.Classification.String()).
		Int("notes", len(cmp.Notes)).
		Msg("comparison complete")

	return cmp, nil
}
