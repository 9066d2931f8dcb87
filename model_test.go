package mcda_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/mcda"
	"github.com/katalvlaran/mcda/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortedCopy returns a sorted copy of ids, for order-independent comparison.
func sortedCopy(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

// TestModel_CanonicalPaperExample covers spec.md §8 scenario S1: Z
// t-dominates W via mass transfer (W's 0.4 excess in f2 subsidizes f1, but
// 0.4+0.4=0.8 < Z's 1.0 in f1), so only Z survives t-ordering.
func TestModel_CanonicalPaperExample(t *testing.T) {
	criteria, alternatives, preferences := fixture.CanonicalPaperExample()

	m, err := mcda.NewModel(criteria, alternatives, preferences)
	require.NoError(t, err)

	assert.Equal(t, []string{"W", "Z"}, sortedCopy(m.ParetoFront()))
	assert.Equal(t, []string{"Z"}, m.TOrdering())
}

// TestModel_AllEquivalentExample covers spec.md §8 scenario S2: four
// criteria coalesced into one group via chained equivalence; A3's
// normalized row matches the spec's expected values exactly, and it alone
// survives t-ordering.
func TestModel_AllEquivalentExample(t *testing.T) {
	criteria, alternatives, preferences := fixture.AllEquivalentExample()

	m, err := mcda.NewModel(criteria, alternatives, preferences)
	require.NoError(t, err)

	norm := m.Normalized()["A3"]
	assert.InDelta(t, 0.3, norm["cr1"], 1e-9)
	assert.InDelta(t, 1.0, norm["cr3"], 1e-9)
	assert.InDelta(t, 1.0, norm["cr4"], 1e-9)
	assert.InDelta(t, 0.5, norm["cr5"], 1e-9)

	assert.Equal(t, []string{"A3"}, m.TOrdering())
}

// TestModel_CycleRejectionExample covers spec.md §8 scenario S3: a mixed
// strict/equivalence cycle of length 3 fails construction.
func TestModel_CycleRejectionExample(t *testing.T) {
	criteria, alternatives, preferences := fixture.CycleRejectionExample()

	_, err := mcda.NewModel(criteria, alternatives, preferences)
	require.Error(t, err)

	var invalid *mcda.InvalidModelError
	require.True(t, errors.As(err, &invalid))
	assert.True(t, errors.Is(err, mcda.ErrCyclicPreferences))
}

// TestModel_NoPreferences covers spec.md §8 scenario S4: with an empty
// preference list, t-ordering must equal the Pareto front exactly.
func TestModel_NoPreferences(t *testing.T) {
	criteria, alternatives, _ := fixture.CanonicalPaperExample()

	m, err := mcda.NewModel(criteria, alternatives, nil)
	require.NoError(t, err)

	assert.Equal(t, sortedCopy(m.ParetoFront()), sortedCopy(m.TOrdering()))
}

// TestModel_SevenCriteriaExample covers spec.md §8 scenario S5: survivors
// after t-ordering are exactly {A, C}.
func TestModel_SevenCriteriaExample(t *testing.T) {
	criteria, alternatives, preferences := fixture.SevenCriteriaExample()

	m, err := mcda.NewModel(criteria, alternatives, preferences)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, sortedCopy(m.TOrdering()))
}

// TestModel_DegenerateColumn covers spec.md §8 scenario S6: removing a
// degenerate (min==max) criterion must not change the t-ordering survivors.
func TestModel_DegenerateColumn(t *testing.T) {
	withConstant, alternatives, preferences := fixture.DegenerateColumnExample()
	mWith, err := mcda.NewModel(withConstant, alternatives, preferences)
	require.NoError(t, err)

	withoutConstant, alternativesNoConst, preferencesNoConst := fixture.CanonicalPaperExample()
	mWithout, err := mcda.NewModel(withoutConstant, alternativesNoConst, preferencesNoConst)
	require.NoError(t, err)

	assert.Equal(t, mWithout.TOrdering(), mWith.TOrdering())

	for _, alt := range []string{"Z", "W"} {
		assert.InDelta(t, 1.0, mWith.Normalized()[alt]["constant"], 1e-9)
	}
}

// TestModel_TOrderingRefinesPareto checks a general property: every
// t-surviving alternative is Pareto-surviving, across every named scenario.
func TestModel_TOrderingRefinesPareto(t *testing.T) {
	build := []func() ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference){
		fixture.CanonicalPaperExample,
		fixture.AllEquivalentExample,
		fixture.SevenCriteriaExample,
		fixture.DegenerateColumnExample,
	}
	for _, b := range build {
		criteria, alternatives, preferences := b()
		m, err := mcda.NewModel(criteria, alternatives, preferences)
		require.NoError(t, err)

		pareto := make(map[string]bool, len(m.ParetoFront()))
		for _, id := range m.ParetoFront() {
			pareto[id] = true
		}
		for _, id := range m.TOrdering() {
			assert.True(t, pareto[id], "t-ordering survivor %q is not in the Pareto front", id)
		}
	}
}

// TestModel_ParetoIdempotence checks that calling ParetoFront twice on the
// same Model returns the same set (memoization must not mutate the result).
func TestModel_ParetoIdempotence(t *testing.T) {
	criteria, alternatives, preferences := fixture.SevenCriteriaExample()
	m, err := mcda.NewModel(criteria, alternatives, preferences)
	require.NoError(t, err)

	first := m.ParetoFront()
	second := m.ParetoFront()
	assert.Equal(t, sortedCopy(first), sortedCopy(second))
}

// TestModel_NoSelfTDominance checks reflexivity exclusion: no alternative
// ever appears t-dominated by itself, i.e. every Pareto survivor that isn't
// dominated by a distinct alternative remains in t-ordering.
func TestModel_NoSelfTDominance(t *testing.T) {
	criteria, alternatives, preferences := fixture.CanonicalPaperExample()
	m, err := mcda.NewModel(criteria, alternatives, preferences)
	require.NoError(t, err)

	survivors := m.TOrdering()
	assert.Contains(t, survivors, "Z")
}

// TestModel_PolarityInversion checks that flipping Maximize for a criterion
// inverts its normalized column.
func TestModel_PolarityInversion(t *testing.T) {
	maxCrit, err := mcda.NewAbsolute("price", true, 0, 100)
	require.NoError(t, err)
	minCrit, err := mcda.NewAbsolute("price", false, 0, 100)
	require.NoError(t, err)

	alternatives := mcda.AlternativeMatrix{
		"A": {"price": mcda.NumberCell(25)},
		"B": {"price": mcda.NumberCell(75)},
	}

	mMax, err := mcda.NewModel([]mcda.Criterion{maxCrit}, alternatives, nil)
	require.NoError(t, err)
	mMin, err := mcda.NewModel([]mcda.Criterion{minCrit}, alternatives, nil)
	require.NoError(t, err)

	for _, alt := range []string{"A", "B"} {
		assert.InDelta(t, 1.0, mMax.Normalized()[alt]["price"]+mMin.Normalized()[alt]["price"], 1e-9)
	}
}

// TestModel_DuplicateCriterionRejected checks that two criteria sharing a
// name fail construction.
func TestModel_DuplicateCriterionRejected(t *testing.T) {
	c, err := mcda.NewAbsolute("dup", true, 0, 1)
	require.NoError(t, err)

	alternatives := mcda.AlternativeMatrix{"A": {"dup": mcda.NumberCell(0.5)}}
	_, err = mcda.NewModel([]mcda.Criterion{c, c}, alternatives, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mcda.ErrDuplicateCriterion))
}

// TestModel_ContradictoryPreferenceRejected checks spec.md §9 Open Question
// (a): a strict preference and an equivalence over the same pair conflict.
func TestModel_ContradictoryPreferenceRejected(t *testing.T) {
	c1, _ := mcda.NewAbsolute("a", true, 0, 1)
	c2, _ := mcda.NewAbsolute("b", true, 0, 1)
	alternatives := mcda.AlternativeMatrix{
		"X": {"a": mcda.NumberCell(0.5), "b": mcda.NumberCell(0.5)},
	}
	strict, _ := mcda.NewPreference("a", "b", false)
	equiv, _ := mcda.NewPreference("a", "b", true)

	_, err := mcda.NewModel([]mcda.Criterion{c1, c2}, alternatives, []mcda.Preference{strict, equiv})
	require.Error(t, err)
	assert.True(t, errors.Is(err, mcda.ErrContradictoryPair))
}

// TestModel_OutOfRangeRejected checks the Validator reports offending
// values for an absolute criterion.
func TestModel_OutOfRangeRejected(t *testing.T) {
	c, _ := mcda.NewAbsolute("x", true, 0, 10)
	alternatives := mcda.AlternativeMatrix{"A": {"x": mcda.NumberCell(20)}}

	_, err := mcda.NewModel([]mcda.Criterion{c}, alternatives, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mcda.ErrOutOfRange))
}

// TestModel_ImportanceGraph checks the exported DAG view matches the
// canonical example's single strict edge f1 > f2.
func TestModel_ImportanceGraph(t *testing.T) {
	criteria, alternatives, preferences := fixture.CanonicalPaperExample()
	m, err := mcda.NewModel(criteria, alternatives, preferences)
	require.NoError(t, err)

	view := m.ImportanceGraph()
	require.Len(t, view.Groups, 4) // f1..f4 are all singleton groups
	require.Len(t, view.Edges, 1)

	more, less := view.Edges[0][0], view.Edges[0][1]
	assert.Equal(t, []string{"f1"}, view.Groups[more])
	assert.Equal(t, []string{"f2"}, view.Groups[less])
}

// TestModel_UnknownCategoryRejected checks the Validator reports offending
// categories for an ordinal criterion.
func TestModel_UnknownCategoryRejected(t *testing.T) {
	c, _ := mcda.NewOrdinal("tier", true, []string{"low", "high"})
	alternatives := mcda.AlternativeMatrix{"A": {"tier": mcda.CategoryCell("medium")}}

	_, err := mcda.NewModel([]mcda.Criterion{c}, alternatives, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mcda.ErrUnknownCategory))
}

// TestModel_ZeroValuePanics checks that calling a query method on a
// zero-value Model (bypassing NewModel) panics with ErrNotNormalized,
// instead of silently operating on a nil normalized matrix.
func TestModel_ZeroValuePanics(t *testing.T) {
	var m mcda.Model

	assert.Panics(t, func() { m.ParetoFront() })
	assert.Panics(t, func() { m.TOrdering() })
	assert.Panics(t, func() { m.Normalized() })
}
