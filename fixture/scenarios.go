package fixture

import "github.com/katalvlaran/mcda"

// CanonicalPaperExample builds spec.md §8 scenario S1: two alternatives Z
// and W over four absolute criteria, f1 strictly more important than f2.
// t-ordering is expected to return {Z}.
func CanonicalPaperExample() ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference) {
	return Build(
		Absolute("f1", true, 0, 1),
		Absolute("f2", true, 0, 1),
		Absolute("f3", true, 0, 1),
		Absolute("f4", true, 0, 1),
		Alternative("Z", map[string]interface{}{"f1": 1.0, "f2": 0.5, "f3": 0.1, "f4": 0.2}),
		Alternative("W", map[string]interface{}{"f1": 0.4, "f2": 0.9, "f3": 0.1, "f4": 0.2}),
		Strict("f1", "f2"),
	)
}

// AllEquivalentExample builds spec.md §8 scenario S2: four criteria chained
// as mutually equivalent (forming a single importance group), including a
// degenerate absolute criterion (cr3) and two ordinal criteria.
func AllEquivalentExample() ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference) {
	return Build(
		Absolute("cr1", true, 0, 10),
		Absolute("cr3", true, 1, 1),
		Ordinal("cr4", true, "Two", "One", "Three"),
		Ordinal("cr5", true, "Yellow", "Green", "Blue"),
		Alternative("A1", map[string]interface{}{"cr1": 1.0, "cr3": 1.0, "cr4": "One", "cr5": "Blue"}),
		Alternative("A2", map[string]interface{}{"cr1": 2.0, "cr3": 1.0, "cr4": "Two", "cr5": "Yellow"}),
		Alternative("A3", map[string]interface{}{"cr1": 3.0, "cr3": 1.0, "cr4": "Three", "cr5": "Green"}),
		Equivalent("cr1", "cr3"),
		Equivalent("cr3", "cr4"),
		Equivalent("cr4", "cr5"),
	)
}

// CycleRejectionExample builds spec.md §8 scenario S3: a mixed
// strict/equivalence cycle of length 3 across Price, Quality, and Brand
// Reputation. NewModel is expected to fail with an *mcda.InvalidModelError
// wrapping mcda.ErrCyclicPreferences.
func CycleRejectionExample() ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference) {
	return Build(
		Absolute("Price", false, 100, 1000),
		Ordinal("Quality", true, "low", "medium", "high"),
		Ordinal("BrandReputation", true, "unknown", "known", "famous"),
		Alternative("A", map[string]interface{}{"Price": 500.0, "Quality": "medium", "BrandReputation": "known"}),
		Alternative("B", map[string]interface{}{"Price": 800.0, "Quality": "high", "BrandReputation": "famous"}),
		Alternative("C", map[string]interface{}{"Price": 300.0, "Quality": "low", "BrandReputation": "unknown"}),
		Strict("Quality", "Price"),
		Equivalent("Price", "BrandReputation"),
		Strict("BrandReputation", "Quality"),
	)
}

// SevenCriteriaExample builds spec.md §8 scenario S5: seven absolute
// criteria on [0,1], four alternatives A-D, with a mix of equivalence and
// strict preferences. t-ordering is expected to return {A, C}.
func SevenCriteriaExample() ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference) {
	opts := []Option{
		Absolute("c1", true, 0, 1),
		Absolute("c2", true, 0, 1),
		Absolute("c3", true, 0, 1),
		Absolute("c4", true, 0, 1),
		Absolute("c5", true, 0, 1),
		Absolute("c6", true, 0, 1),
		Absolute("c7", true, 0, 1),
		rowS5("A", 0.4, 0.6, 0.4, 0.2, 0.1, 0.7, 0.5),
		rowS5("B", 0.2, 0.8, 0.4, 0.2, 0.2, 0.1, 0.9),
		rowS5("C", 0.2, 0.7, 0.5, 0.3, 0.2, 0.5, 0.7),
		rowS5("D", 0.2, 0.7, 0.4, 0.3, 0.2, 0.4, 0.2),
		Equivalent("c2", "c3"),
		Equivalent("c4", "c5"),
		Equivalent("c5", "c6"),
		Strict("c1", "c3"),
		Strict("c5", "c7"),
	}
	return Build(opts...)
}

func rowS5(id string, c1, c2, c3, c4, c5, c6, c7 float64) Option {
	return Alternative(id, map[string]interface{}{
		"c1": c1, "c2": c2, "c3": c3, "c4": c4, "c5": c5, "c6": c6, "c7": c7,
	})
}

// DegenerateColumnExample builds spec.md §8 scenario S6: the canonical
// paper example with an added degenerate absolute criterion (min==max)
// that must contribute a constant 1.0 without affecting t-ordering.
func DegenerateColumnExample() ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference) {
	return Build(
		Absolute("f1", true, 0, 1),
		Absolute("f2", true, 0, 1),
		Absolute("f3", true, 0, 1),
		Absolute("f4", true, 0, 1),
		Absolute("constant", true, 5, 5),
		Alternative("Z", map[string]interface{}{"f1": 1.0, "f2": 0.5, "f3": 0.1, "f4": 0.2, "constant": 5.0}),
		Alternative("W", map[string]interface{}{"f1": 0.4, "f2": 0.9, "f3": 0.1, "f4": 0.2, "constant": 5.0}),
		Strict("f1", "f2"),
	)
}
