package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForMonthlyTotal(t *testing.T) {
	tests := []struct {
		name        string
		kg          float64
		wantTrees   float64
		wantRatio   float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:      "typical footprint",
			kg:        200 * TreeAbsorptionKgPerYear / 12.0, // exactly 200 tree-months
			wantTrees: 200.0,
			wantRatio: 200 * TreeAbsorptionKgPerYear / 12.0 / SustainableTargetKgPerMonth,
		},
		{
			name:      "on the sustainable target",
			kg:        167.0,
			wantTrees: 167.0 / (21.77 / 12.0),
			wantRatio: 1.0,
		},
		{
			name:        "below display threshold",
			kg:          0.05,
			wantIsEmpty: true,
		},
		{
			name:        "zero",
			kg:          0,
			wantIsEmpty: true,
		},
		{
			name:    "negative rejected",
			kg:      -10,
			wantErr: ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ForMonthlyTotal(tt.kg)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty)
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, got.IsEmpty)
				return
			}

			assert.False(t, got.IsEmpty)
			assert.InDelta(t, tt.wantTrees, got.Trees, 1e-6)
			assert.InDelta(t, tt.wantRatio, got.TargetRatio, 1e-9)
			assert.Contains(t, got.DisplayText, "trees")
		})
	}
}
