// Package fixture builds Criterion/Preference/AlternativeMatrix test data
// via functional options, generalizing the teacher's builder package
// (BuilderOption / newBuilderConfig, see builder/config.go and
// builder/options.go) from graph topologies to decision-model fixtures.
// This is the "construction of test fixtures" external collaborator named
// in spec.md §1 — mcda itself never imports this package.
package fixture

import (
	"fmt"

	"github.com/katalvlaran/mcda"
)

// scenario accumulates criteria, an alternative matrix, and preferences as
// Option values are applied, in the order they are given.
type scenario struct {
	criteria    []mcda.Criterion
	matrix      mcda.AlternativeMatrix
	preferences []mcda.Preference
}

// Option customizes a scenario under construction. As with the teacher's
// BuilderOption, later options compose additively — they append, they
// never undo an earlier option.
type Option func(s *scenario)

// Build resolves opts in order into constructor-ready inputs for
// mcda.NewModel.
func Build(opts ...Option) ([]mcda.Criterion, mcda.AlternativeMatrix, []mcda.Preference) {
	s := &scenario{matrix: make(mcda.AlternativeMatrix)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s.criteria, s.matrix, s.preferences
}

// Absolute adds a numeric criterion over [min, max]. Panics on invalid
// input (empty name, min > max) — fixtures describe fixed test data, so a
// malformed fixture is a programmer error, not a runtime condition to
// recover from, matching the teacher's option-constructors-panic
// convention (builder/options.go).
func Absolute(name string, maximize bool, min, max float64) Option {
	c, err := mcda.NewAbsolute(name, maximize, min, max)
	if err != nil {
		panic(fmt.Sprintf("fixture: Absolute(%q): %v", name, err))
	}
	return func(s *scenario) { s.criteria = append(s.criteria, c) }
}

// Ordinal adds a categorical criterion over a worst-to-best values
// sequence. Panics on invalid input, as Absolute does.
func Ordinal(name string, maximize bool, values ...string) Option {
	c, err := mcda.NewOrdinal(name, maximize, values)
	if err != nil {
		panic(fmt.Sprintf("fixture: Ordinal(%q): %v", name, err))
	}
	return func(s *scenario) { s.criteria = append(s.criteria, c) }
}

// Alternative adds one row to the matrix. cells maps criterion name to
// either a float64/int (-> mcda.NumberCell) or a string (-> mcda.CategoryCell).
func Alternative(id string, cells map[string]interface{}) Option {
	row := make(mcda.Row, len(cells))
	for name, v := range cells {
		switch val := v.(type) {
		case float64:
			row[name] = mcda.NumberCell(val)
		case int:
			row[name] = mcda.NumberCell(float64(val))
		case string:
			row[name] = mcda.CategoryCell(val)
		default:
			panic(fmt.Sprintf("fixture: Alternative(%q): unsupported cell type %T for %q", id, v, name))
		}
	}
	return func(s *scenario) { s.matrix[id] = row }
}

// Strict adds a strict-importance preference: c1 is more important than c2.
func Strict(c1, c2 string) Option {
	p, err := mcda.NewPreference(c1, c2, false)
	if err != nil {
		panic(fmt.Sprintf("fixture: Strict(%q, %q): %v", c1, c2, err))
	}
	return func(s *scenario) { s.preferences = append(s.preferences, p) }
}

// Equivalent adds an equivalence preference between c1 and c2.
func Equivalent(c1, c2 string) Option {
	p, err := mcda.NewPreference(c1, c2, true)
	if err != nil {
		panic(fmt.Sprintf("fixture: Equivalent(%q, %q): %v", c1, c2, err))
	}
	return func(s *scenario) { s.preferences = append(s.preferences, p) }
}
