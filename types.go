package mcda

import "fmt"

// CriterionKind distinguishes the two supported criterion domains.
// isCriterionKind is an unexported marker so only Absolute and Ordinal
// can implement it — callers type-switch rather than extend the set.
type CriterionKind interface {
	isCriterionKind()
}

// Absolute is a numeric criterion domain bounded by [Min, Max].
type Absolute struct {
	Min float64
	Max float64
}

func (Absolute) isCriterionKind() {}

// degenerate reports whether the domain collapses to a single value.
func (a Absolute) degenerate() bool { return a.Min == a.Max }

// Ordinal is a categorical criterion domain: Values is ordered worst-first.
type Ordinal struct {
	Values []string
}

func (Ordinal) isCriterionKind() {}

func (o Ordinal) degenerate() bool { return len(o.Values) == 1 }

// rank returns the 0-based position of value within Values, or -1 if absent.
func (o Ordinal) rank(value string) int {
	for i, v := range o.Values {
		if v == value {
			return i
		}
	}
	return -1
}

// Criterion is a named attribute with a kind (Absolute or Ordinal) and a
// polarity: Maximize true means larger (or later-in-sequence) is better.
// Criterion is immutable after construction.
type Criterion struct {
	Name     string
	Maximize bool
	Kind     CriterionKind
}

// NewAbsolute builds a numeric criterion over [min, max]. Returns an error
// if min > max or name is empty.
func NewAbsolute(name string, maximize bool, min, max float64) (Criterion, error) {
	if name == "" {
		return Criterion{}, fmt.Errorf("mcda: criterion name must not be empty")
	}
	if min > max {
		return Criterion{}, fmt.Errorf("mcda: criterion %q: min (%v) > max (%v)", name, min, max)
	}
	return Criterion{Name: name, Maximize: maximize, Kind: Absolute{Min: min, Max: max}}, nil
}

// NewOrdinal builds a categorical criterion over a worst-to-best sequence
// of distinct labels. Returns an error if name is empty, values is empty,
// or values contains a duplicate label.
func NewOrdinal(name string, maximize bool, values []string) (Criterion, error) {
	if name == "" {
		return Criterion{}, fmt.Errorf("mcda: criterion name must not be empty")
	}
	if len(values) == 0 {
		return Criterion{}, fmt.Errorf("mcda: criterion %q: ordinal values must not be empty", name)
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return Criterion{}, fmt.Errorf("mcda: criterion %q: duplicate ordinal value %q", name, v)
		}
		seen[v] = true
	}
	cp := append([]string(nil), values...)
	return Criterion{Name: name, Maximize: maximize, Kind: Ordinal{Values: cp}}, nil
}

// IsAbsolute reports whether c's kind is Absolute.
func (c Criterion) IsAbsolute() bool {
	_, ok := c.Kind.(Absolute)
	return ok
}

// IsOrdinal reports whether c's kind is Ordinal.
func (c Criterion) IsOrdinal() bool {
	_, ok := c.Kind.(Ordinal)
	return ok
}

// degenerate reports whether c normalizes to a constant value regardless of
// input (absolute min==max, or ordinal with exactly one value).
func (c Criterion) degenerate() bool {
	switch k := c.Kind.(type) {
	case Absolute:
		return k.degenerate()
	case Ordinal:
		return k.degenerate()
	default:
		return false
	}
}

// Preference asserts an ordered relation between two criteria: when
// Equivalent is true the pair is symmetric (Criterion1 ≡ Criterion2);
// otherwise it is a strict importance relation (Criterion1 ≻ Criterion2).
type Preference struct {
	Criterion1 string
	Criterion2 string
	Equivalent bool
}

// NewPreference builds a Preference between two distinct criterion names.
// Self-pairs are rejected: they assert nothing meaningful per the model.
func NewPreference(c1, c2 string, equivalent bool) (Preference, error) {
	if c1 == "" || c2 == "" {
		return Preference{}, fmt.Errorf("mcda: preference criterion names must not be empty")
	}
	if c1 == c2 {
		return Preference{}, fmt.Errorf("mcda: preference is a self-pair on %q", c1)
	}
	return Preference{Criterion1: c1, Criterion2: c2, Equivalent: equivalent}, nil
}

// Cell is a single alternative×criterion value. Exactly one of Number or
// Category is meaningful, dictated by the owning criterion's kind.
type Cell struct {
	Number   float64
	Category string
	IsNumber bool
}

// NumberCell builds a Cell carrying a numeric value (for Absolute criteria).
func NumberCell(v float64) Cell { return Cell{Number: v, IsNumber: true} }

// CategoryCell builds a Cell carrying a category label (for Ordinal criteria).
func CategoryCell(v string) Cell { return Cell{Category: v, IsNumber: false} }

// Row maps a criterion name to its cell value for one alternative.
type Row map[string]Cell

// AlternativeMatrix maps an alternative identifier to its Row. It is the
// external "tabular data source" contract: mcda only reads it, it never
// owns the storage backing it — see the config and fixture packages for
// concrete producers.
type AlternativeMatrix map[string]Row
