package footprint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/refdata"
)

func TestCompareClassification(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name       string
		grandTotal float64
		want       Classification
	}{
		{name: "above world average", grandTotal: 450, want: ClassificationAbove},
		{name: "below world average", grandTotal: 150, want: ClassificationAtOrBelow},
		{name: "exactly world average", grandTotal: 392.5, want: ClassificationAtOrBelow},
		{name: "zero total", grandTotal: 0, want: ClassificationAtOrBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := e.Compare(context.Background(), tt.grandTotal, "CountryX")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmp.Classification)
		})
	}
}

func TestCompareFixedCandidateOrder(t *testing.T) {
	e := newTestEngine(t)

	cmp, err := e.Compare(context.Background(), 100, "CountryX")
	require.NoError(t, err)

	require.Len(t, cmp.Entries, 3)
	assert.Equal(t, "CountryX", cmp.Entries[0].Label)
	assert.Equal(t, "EU Average", cmp.Entries[1].Label)
	assert.Equal(t, "World Average", cmp.Entries[2].Label)

	require.NotNil(t, cmp.Entries[0].Average)
	assert.InDelta(t, 200, *cmp.Entries[0].Average, 1e-9)
	require.NotNil(t, cmp.Entries[1].Average)
	assert.InDelta(t, 557.5, *cmp.Entries[1].Average, 1e-9)
	require.NotNil(t, cmp.Entries[2].Average)
	assert.InDelta(t, 392.5, *cmp.Entries[2].Average, 1e-9)
	assert.Empty(t, cmp.Notes)
}

func TestCompareMissingBaselines(t *testing.T) {
	// CountryZ has factors but no baseline; the table also lacks the
	// EU and World aggregates entirely.
	store, err := refdata.Load(
		strings.NewReader("Activity,CountryZ\nBus,0.05\n"),
		strings.NewReader("Country,PerCapitaCO2\nSomewhere,100\n"),
	)
	require.NoError(t, err)
	cat, err := catalog.New()
	require.NoError(t, err)
	e := NewEngine(store, cat)

	cmp, err := e.Compare(context.Background(), 500, "CountryZ")
	require.NoError(t, err)

	require.Len(t, cmp.Entries, 3)
	for _, entry := range cmp.Entries {
		assert.Nil(t, entry.Average)
	}
	assert.Len(t, cmp.Notes, 3)

	// World average unavailable: classification is unknown no matter
	// how large the total, never a silent "below".
	assert.Equal(t, ClassificationUnknown, cmp.Classification)
}

func TestCompareCountryWithoutBaseline(t *testing.T) {
	store, err := refdata.Load(
		strings.NewReader("Activity,CountryZ\nBus,0.05\n"),
		strings.NewReader("Country,PerCapitaCO2\nWorld,392.5\nEuropean Union (27),557.5\n"),
	)
	require.NoError(t, err)
	cat, err := catalog.New()
	require.NoError(t, err)
	e := NewEngine(store, cat)

	cmp, err := e.Compare(context.Background(), 100, "CountryZ")
	require.NoError(t, err)

	assert.Nil(t, cmp.Entries[0].Average)
	require.Len(t, cmp.Notes, 1)
	assert.Contains(t, cmp.Notes[0], "CountryZ")
	assert.NotNil(t, cmp.Entries[2].Average)
	assert.Equal(t, ClassificationAtOrBelow, cmp.Classification)
}

func TestCompareUnknownCountry(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Compare(context.Background(), 100, "Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCountry)
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "above world average", ClassificationAbove.String())
	assert.Equal(t, "at or below world average", ClassificationAtOrBelow.String())
	assert.Equal(t, "unknown", ClassificationUnknown.String())
}
