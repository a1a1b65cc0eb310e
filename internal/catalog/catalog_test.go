package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartitionsActivities(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	seen := make(map[string]Category)
	total := 0
	for _, cat := range Categories {
		for _, id := range c.ActivitiesIn(cat) {
			prev, dup := seen[id]
			require.False(t, dup, "activity %q in both %s and %s", id, prev, cat)
			seen[id] = cat
			total++
		}
	}

	assert.Equal(t, total, len(c.Activities()), "Activities() must cover the full partition")

	// Every activity resolves back to the category that declared it.
	for id, want := range seen {
		got, ok := c.CategoryOf(id)
		require.True(t, ok, "activity %q lost its category", id)
		assert.Equal(t, want, got)
	}
}

func TestCategoryOfUnknown(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, ok := c.CategoryOf("Teleportation")
	assert.False(t, ok)
	assert.False(t, c.Known("Teleportation"))
}

func TestDeclarationIndexOrdersTabs(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	// Transport declares before Food, Food before Energy & Water.
	assert.Less(t, c.DeclarationIndex("Domestic_flight"), c.DeclarationIndex("Beef"))
	assert.Less(t, c.DeclarationIndex("Beef"), c.DeclarationIndex("Electricity"))
	assert.Less(t, c.DeclarationIndex("Electricity"), c.DeclarationIndex("Hotel_stay"))

	// Unknown ids sort after everything known.
	assert.Equal(t, len(c.Activities()), c.DeclarationIndex("Teleportation"))
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "curated label", id: "Ev_scooter", want: "E-Scooter"},
		{name: "curated multiword", id: "Diesel_train_long", want: "Diesel Long-Dist Train"},
		{name: "fallback replaces separators", id: "Solar_panel_credit", want: "Solar Panel Credit"},
		{name: "fallback single word", id: "Kerosene", want: "Kerosene"},
		{name: "fallback never empty", id: "x", want: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayName(tt.id)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Transport", Transport.String())
	assert.Equal(t, "Food", Food.String())
	assert.Equal(t, "Energy & Water", EnergyWater.String())
	assert.Equal(t, "Lodging", Lodging.String())
}
