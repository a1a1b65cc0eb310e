package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/footprint"
	"github.com/keanyaoha/greenprint/internal/greenops"
)

func testBundle() Bundle {
	world := 392.5
	eu := 557.5
	equiv, _ := greenops.ForMonthlyTotal(460.0)
	return Bundle{
		Result: &footprint.Result{
			Country:    "Germany",
			GrandTotal: 460.0,
			CategoryTotals: map[catalog.Category]float64{
				catalog.Transport:   300.0,
				catalog.Food:        118.0,
				catalog.EnergyWater: 42.0,
			},
			TopActivities: []footprint.ActivityEmission{
				{ActivityID: "Petrol_car", Emission: 300.0},
				{ActivityID: "Beef", Emission: 118.0},
				{ActivityID: "Electricity", Emission: 42.0},
			},
		},
		Comparison: &footprint.Comparison{
			Entries: []footprint.ComparisonEntry{
				{Label: "Germany", Average: nil},
				{Label: "EU Average", Average: &eu},
				{Label: "World Average", Average: &world},
			},
			Classification: footprint.ClassificationAbove,
			Notes:          []string{"Average data for Germany not available."},
		},
		Equivalency: equiv,
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderFullDocument(t *testing.T) {
	doc, err := Render(testBundle())
	require.NoError(t, err)
	text := string(doc)

	assert.Contains(t, text, "GreenPrint Carbon Footprint Report")
	assert.Contains(t, text, "Country:   Germany")
	assert.Contains(t, text, "460.0 kg")
	assert.Contains(t, text, "Emission by Category")
	assert.Contains(t, text, "Transport")
	assert.Contains(t, text, "Energy & Water")
	assert.Contains(t, text, "Top 3 Emitting Activities")
	assert.Contains(t, text, "Petrol Car")
	assert.Contains(t, text, "Beef Products")
	assert.Contains(t, text, "Comparison with Averages")
	assert.Contains(t, text, "You")
	assert.Contains(t, text, "above world average")
	assert.Contains(t, text, "Note: Average data for Germany not available.")
	assert.Contains(t, text, "trees")

	// Lodging had no contribution and must not appear as a bar.
	assert.NotContains(t, text, "Lodging")
}

func TestRenderEmptyResult(t *testing.T) {
	b := testBundle()
	b.Result = &footprint.Result{Country: "Germany"}

	doc, err := Render(b)
	require.NoError(t, err)
	text := string(doc)

	assert.Contains(t, text, "No positive emissions")
	assert.NotContains(t, text, "Emission by Category")
}

func TestAssembleIncompleteBundle(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Bundle)
	}{
		{name: "nil result", mutate: func(b *Bundle) { b.Result = nil }},
		{name: "nil comparison", mutate: func(b *Bundle) { b.Comparison = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBundle()
			tt.mutate(&b)
			_, err := Render(b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncompleteBundle)
		})
	}
}

// failWriter always errors, standing in for a broken export sink.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestAssembleWriterFailure(t *testing.T) {
	b := testBundle()

	err := Assemble(failWriter{}, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssemblyFailed)

	// The bundle is untouched and can be rendered again elsewhere.
	doc, err := Render(b)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestComparisonSortedAscendingForDisplay(t *testing.T) {
	doc, err := Render(testBundle())
	require.NoError(t, err)
	text := string(doc)

	world := indexOf(t, text, "World Average")
	you := indexOf(t, text, "You")
	eu := indexOf(t, text, "EU Average")

	// 392.5 < 460 < 557.5: World, You, EU from top to bottom.
	assert.Less(t, world, you)
	assert.Less(t, you, eu)
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	i := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, i, 0, "%q not found in document", needle)
	return i
}
