package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcda"
	"github.com/katalvlaran/mcda/fixture"
)

func TestBuild_ComposesOptionsInOrder(t *testing.T) {
	criteria, alternatives, preferences := fixture.Build(
		fixture.Absolute("price", false, 0, 1000),
		fixture.Ordinal("tier", true, "low", "high"),
		fixture.Alternative("A", map[string]interface{}{"price": 500.0, "tier": "high"}),
		fixture.Strict("tier", "price"),
	)

	require.Len(t, criteria, 2)
	assert.Equal(t, "price", criteria[0].Name)
	assert.Equal(t, "tier", criteria[1].Name)

	require.Contains(t, alternatives, "A")
	assert.InDelta(t, 500.0, alternatives["A"]["price"].Number, 1e-9)
	assert.Equal(t, "high", alternatives["A"]["tier"].Category)

	require.Len(t, preferences, 1)
	assert.False(t, preferences[0].Equivalent)
}

func TestAbsolute_PanicsOnInvalidRange(t *testing.T) {
	assert.Panics(t, func() {
		fixture.Absolute("bad", true, 10, 0)
	})
}

func TestOrdinal_PanicsOnEmptyValues(t *testing.T) {
	assert.Panics(t, func() {
		fixture.Ordinal("bad", true)
	})
}

func TestAlternative_PanicsOnUnsupportedCellType(t *testing.T) {
	assert.Panics(t, func() {
		fixture.Alternative("A", map[string]interface{}{"x": true})
	})
}

// TestNamedScenarios_AllConstructModels checks every named scenario except
// the intentionally-cyclic one produces a constructible Model.
func TestNamedScenarios_AllConstructModels(t *testing.T) {
	build := []func() ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference){
		fixture.CanonicalPaperExample,
		fixture.AllEquivalentExample,
		fixture.SevenCriteriaExample,
		fixture.DegenerateColumnExample,
	}
	for _, b := range build {
		criteria, alternatives, preferences := b()
		_, err := mcda.NewModel(criteria, alternatives, preferences)
		require.NoError(t, err)
	}
}

func TestCycleRejectionExample_FailsConstruction(t *testing.T) {
	criteria, alternatives, preferences := fixture.CycleRejectionExample()
	_, err := mcda.NewModel(criteria, alternatives, preferences)
	require.Error(t, err)
}
