package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFactors = `Activity,CountryX,CountryY
Bus,0.05,0.10
Beef,27.0,
Electricity,0.42,0.30
`

const validBaselines = `Country,PerCapitaCO2
CountryX,200
World,392.5
European Union (27),557.5
`

func mustLoad(t *testing.T, factors, baselines string) *Store {
	t.Helper()
	s, err := Load(strings.NewReader(factors), strings.NewReader(baselines))
	require.NoError(t, err)
	return s
}

func TestLoadValid(t *testing.T) {
	s := mustLoad(t, validFactors, validBaselines)

	f, ok := s.Factor("Bus", "CountryX")
	require.True(t, ok)
	assert.InDelta(t, 0.05, f, 1e-12)

	// Empty cell means factor unknown for that pair, not zero.
	_, ok = s.Factor("Beef", "CountryY")
	assert.False(t, ok)

	// Unknown activity row.
	_, ok = s.Factor("Teleportation", "CountryX")
	assert.False(t, ok)

	assert.True(t, s.HasCountry("CountryX"))
	assert.False(t, s.HasCountry("Atlantis"))
	assert.Equal(t, []string{"CountryX", "CountryY"}, s.Countries())

	world, ok := s.Baseline("World")
	require.True(t, ok)
	assert.InDelta(t, 392.5, world, 1e-12)

	_, ok = s.Baseline("Atlantis")
	assert.False(t, ok)
}

func TestLoadFactorFailures(t *testing.T) {
	tests := []struct {
		name    string
		factors string
		wantErr error
	}{
		{
			name:    "missing Activity column",
			factors: "Act,CountryX\nBus,0.05\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "no country columns",
			factors: "Activity\nBus\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "non-numeric factor",
			factors: "Activity,CountryX\nBus,abc\n",
			wantErr: ErrMalformedData,
		},
		{
			name:    "negative factor",
			factors: "Activity,CountryX\nBus,-1\n",
			wantErr: ErrMalformedData,
		},
		{
			name:    "empty activity id",
			factors: "Activity,CountryX\n,0.05\n",
			wantErr: ErrMalformedData,
		},
		{
			name:    "duplicate country column",
			factors: "Activity,CountryX,CountryX\nBus,0.05,0.06\n",
			wantErr: ErrMalformedData,
		},
		{
			name:    "no rows",
			factors: "Activity,CountryX\n",
			wantErr: ErrMalformedData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.factors), strings.NewReader(validBaselines))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadBaselineFailures(t *testing.T) {
	tests := []struct {
		name      string
		baselines string
		wantErr   error
	}{
		{
			name:      "missing Country column",
			baselines: "Nation,PerCapitaCO2\nWorld,392\n",
			wantErr:   ErrMissingColumn,
		},
		{
			name:      "missing PerCapitaCO2 column",
			baselines: "Country,CO2\nWorld,392\n",
			wantErr:   ErrMissingColumn,
		},
		{
			name:      "non-numeric baseline",
			baselines: "Country,PerCapitaCO2\nWorld,lots\n",
			wantErr:   ErrMalformedData,
		},
		{
			name:      "negative baseline",
			baselines: "Country,PerCapitaCO2\nWorld,-5\n",
			wantErr:   ErrMalformedData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(validFactors), strings.NewReader(tt.baselines))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadTrimsHeaderWhitespace(t *testing.T) {
	s := mustLoad(t, "Activity , CountryX \nBus,0.05\n", " Country , PerCapitaCO2 \nWorld,392.5\n")

	_, ok := s.Factor("Bus", "CountryX")
	assert.True(t, ok)
	_, ok = s.Baseline("World")
	assert.True(t, ok)
}

func TestBaselineRowsWithoutValueAreSkipped(t *testing.T) {
	s := mustLoad(t, validFactors, "Country,PerCapitaCO2\nWorld,392.5\nNowhere,\n")

	_, ok := s.Baseline("Nowhere")
	assert.False(t, ok)
}

func TestDefaultEmbeddedDatasets(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	// The embedded tables must always satisfy the app's fixed lookups.
	assert.NotEmpty(t, s.Countries())
	_, ok := s.Baseline("World")
	assert.True(t, ok, "embedded baselines must include World")
	_, ok = s.Baseline("European Union (27)")
	assert.True(t, ok, "embedded baselines must include the EU aggregate")

	// Memoized: a second call returns the identical store.
	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, s, again)
}
