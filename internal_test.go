// Package mcda contains white-box unit tests for the grouping, closure, and
// t-dominance internals, matching the teacher's convention of testing
// unexported configuration primitives from within the package itself
// (see builder/config_test.go).
package mcda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGroups_EquivalenceCoalescing(t *testing.T) {
	criteria := []Criterion{
		{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"},
	}
	preferences := []Preference{
		{Criterion1: "a", Criterion2: "b", Equivalent: true},
		{Criterion1: "b", Criterion2: "c", Equivalent: true},
	}

	gs := buildGroups(criteria, preferences)
	assert.Equal(t, 2, gs.count())
	assert.Equal(t, gs.groupOf("a"), gs.groupOf("b"))
	assert.Equal(t, gs.groupOf("b"), gs.groupOf("c"))
	assert.NotEqual(t, gs.groupOf("a"), gs.groupOf("d"))
}

// TestBuildGroups_OrderIndependence verifies the group partition does not
// depend on the order preferences were supplied in (spec.md §8
// "Equivalence coalescing").
func TestBuildGroups_OrderIndependence(t *testing.T) {
	criteria := []Criterion{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	forward := []Preference{
		{Criterion1: "a", Criterion2: "b", Equivalent: true},
		{Criterion1: "b", Criterion2: "c", Equivalent: true},
	}
	backward := []Preference{
		{Criterion1: "b", Criterion2: "c", Equivalent: true},
		{Criterion1: "a", Criterion2: "b", Equivalent: true},
	}

	gs1 := buildGroups(criteria, forward)
	gs2 := buildGroups(criteria, backward)
	assert.Equal(t, gs1.count(), gs2.count())
	assert.Equal(t, gs1.groupOf("a") == gs1.groupOf("c"), gs2.groupOf("a") == gs2.groupOf("c"))
}

func TestBuildImportanceDAG_TransitiveClosure(t *testing.T) {
	criteria := []Criterion{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	preferences := []Preference{
		{Criterion1: "a", Criterion2: "b", Equivalent: false}, // a > b
		{Criterion1: "b", Criterion2: "c", Equivalent: false}, // b > c
	}
	gs := buildGroups(criteria, preferences)
	dag := buildImportanceDAG(gs, preferences)

	aIdx, bIdx, cIdx := gs.groupOf("a"), gs.groupOf("b"), gs.groupOf("c")
	assert.True(t, dag.ancestorsOf(cIdx)[bIdx])
	assert.True(t, dag.ancestorsOf(cIdx)[aIdx], "transitive ancestor a must be reachable from c")
	assert.True(t, dag.ancestorsOf(bIdx)[aIdx])
	assert.False(t, dag.ancestorsOf(aIdx)[cIdx])
}

func TestTDominates_FastPath(t *testing.T) {
	criteria := []Criterion{{Name: "f1"}, {Name: "f2"}}
	gs := buildGroups(criteria, nil)
	dag := buildImportanceDAG(gs, nil)

	z := map[string]float64{"f1": 0.9, "f2": 0.5}
	w := map[string]float64{"f1": 0.5, "f2": 0.5}
	assert.True(t, tDominates(z, w, gs, dag))
	assert.False(t, tDominates(w, z, gs, dag))
}

func TestTDominates_EqualRowsNeverDominate(t *testing.T) {
	criteria := []Criterion{{Name: "f1"}, {Name: "f2"}}
	gs := buildGroups(criteria, nil)
	dag := buildImportanceDAG(gs, nil)

	z := map[string]float64{"f1": 0.5, "f2": 0.5}
	assert.False(t, tDominates(z, z, gs, dag))
}

func TestTDominates_NoAncestorsCannotAbsorbExcess(t *testing.T) {
	criteria := []Criterion{{Name: "f1"}, {Name: "f2"}}
	gs := buildGroups(criteria, nil) // no equivalence, no strict preference => no DAG edges
	dag := buildImportanceDAG(gs, nil)

	z := map[string]float64{"f1": 0.6, "f2": 0.1}
	w := map[string]float64{"f1": 0.2, "f2": 0.5}
	assert.False(t, tDominates(z, w, gs, dag))
}

func TestRound8_AbsorbsFloatingDrift(t *testing.T) {
	require.Equal(t, 0.3, round8(0.1+0.2))
}

func TestParetoFront_Idempotent(t *testing.T) {
	rows := NormalizedMatrix{
		"A": {"x": 1.0, "y": 0.2},
		"B": {"x": 0.5, "y": 0.5},
		"C": {"x": 0.1, "y": 0.1},
	}
	ids := []string{"A", "B", "C"}
	criteriaNames := []string{"x", "y"}

	first := paretoFront(rows, ids, criteriaNames)
	second := paretoFront(rows, first, criteriaNames)
	assert.ElementsMatch(t, first, second)
	assert.NotContains(t, first, "C") // dominated by both A and B
}
