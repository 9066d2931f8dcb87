// validate.go — the Validator (spec.md §4.1). Checks inputs in a fixed
// order and never mutates them; the first violated check fails construction
// with an *InvalidModelError. Ported faithfully from the Python reference's
// DecisionModel.validate_model / check_for_cycles, generalized to Go's
// explicit-error idiom and to stable integer group identity (spec.md §9).
package mcda

import (
	"fmt"
	"sort"
)

// validate runs every Validator check in spec order. Duplicate criterion
// names are rejected first, before preferences are examined, since the
// later checks index criteria by name.
func validate(criteria []Criterion, alternatives AlternativeMatrix, preferences []Preference) error {
	if err := validateDuplicateCriteria(criteria); err != nil {
		return err
	}
	byName := make(map[string]Criterion, len(criteria))
	for _, c := range criteria {
		byName[c.Name] = c
	}

	if err := validateDuplicateAlternatives(alternatives); err != nil {
		return err
	}
	if err := validateColumns(criteria, alternatives); err != nil {
		return err
	}
	if err := validatePreferenceCriteria(preferences, byName); err != nil {
		return err
	}
	if err := validateNoContradiction(preferences); err != nil {
		return err
	}
	if err := checkForCycles(criteria, preferences); err != nil {
		return err
	}
	return nil
}

// validateDuplicateCriteria rejects two criteria sharing a name (Open
// Question resolution: spec.md §9 lists duplicate alternatives but is
// silent on duplicate criteria; they are rejected here).
func validateDuplicateCriteria(criteria []Criterion) error {
	seen := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		if seen[c.Name] {
			return invalidModel(ErrDuplicateCriterion, "criterion %q is declared more than once", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// validateDuplicateAlternatives is a no-op by construction: AlternativeMatrix
// is a Go map, so duplicate keys cannot occur at the type level. The check
// exists as the named hook for spec.md §9 Open Question (c) and always
// returns nil; rows that a producer collapsed under one key before calling
// NewModel are not detected.
func validateDuplicateAlternatives(alternatives AlternativeMatrix) error {
	_ = alternatives
	return nil
}

// validateColumns checks, for every declared criterion: the column exists,
// cell types match the kind, and values lie within the declared domain.
// All offending values for a criterion are collected before failing,
// mirroring the Python reference's invalid_values.tolist() behavior.
func validateColumns(criteria []Criterion, alternatives AlternativeMatrix) error {
	altNames := sortedKeys(alternatives)
	for _, c := range criteria {
		switch kind := c.Kind.(type) {
		case Absolute:
			var wrongType []string
			var outOfRange []interface{}
			for _, alt := range altNames {
				cell, ok := alternatives[alt][c.Name]
				if !ok {
					return invalidModel(ErrMissingColumn, "alternative %q is missing criterion %q", alt, c.Name)
				}
				if !cell.IsNumber {
					wrongType = append(wrongType, alt)
					continue
				}
				if cell.Number < kind.Min || cell.Number > kind.Max {
					outOfRange = append(outOfRange, cell.Number)
				}
			}
			if len(wrongType) > 0 {
				return invalidModel(ErrWrongValueType, "criterion %q must carry numeric values, but alternatives %v do not", c.Name, wrongType)
			}
			if len(outOfRange) > 0 {
				return invalidModel(ErrOutOfRange, "values %v for criterion %q are out of range [%v, %v]", outOfRange, c.Name, kind.Min, kind.Max)
			}
		case Ordinal:
			var wrongType []string
			var unknown []string
			for _, alt := range altNames {
				cell, ok := alternatives[alt][c.Name]
				if !ok {
					return invalidModel(ErrMissingColumn, "alternative %q is missing criterion %q", alt, c.Name)
				}
				if cell.IsNumber {
					wrongType = append(wrongType, alt)
					continue
				}
				if kind.rank(cell.Category) < 0 {
					unknown = append(unknown, cell.Category)
				}
			}
			if len(wrongType) > 0 {
				return invalidModel(ErrWrongValueType, "criterion %q must carry category values, but alternatives %v do not", c.Name, wrongType)
			}
			if len(unknown) > 0 {
				return invalidModel(ErrUnknownCategory, "values %v for criterion %q are not in %v", unknown, c.Name, kind.Values)
			}
		}
	}
	return nil
}

// validatePreferenceCriteria checks that every preference references
// declared criteria only.
func validatePreferenceCriteria(preferences []Preference, byName map[string]Criterion) error {
	for _, p := range preferences {
		if _, ok := byName[p.Criterion1]; !ok {
			return invalidModel(ErrUndeclaredCriterion, "preference references undeclared criterion %q", p.Criterion1)
		}
		if _, ok := byName[p.Criterion2]; !ok {
			return invalidModel(ErrUndeclaredCriterion, "preference references undeclared criterion %q", p.Criterion2)
		}
	}
	return nil
}

// validateNoContradiction rejects a strict preference and an equivalence
// asserted on the same unordered pair of criteria (spec.md §9 Open
// Question (a), resolved here in favor of rejection).
func validateNoContradiction(preferences []Preference) error {
	strict := make(map[[2]string]bool)
	equiv := make(map[[2]string]bool)
	for _, p := range preferences {
		key := unorderedKey(p.Criterion1, p.Criterion2)
		if p.Equivalent {
			equiv[key] = true
		} else {
			strict[key] = true
		}
	}
	for key := range strict {
		if equiv[key] {
			return invalidModel(ErrContradictoryPair, "criteria %q and %q are asserted both strictly ordered and equivalent", key[0], key[1])
		}
	}
	return nil
}

func unorderedKey(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

// prefEdge is one entry in the bounded-depth preference multigraph: a
// neighbor name and whether the edge to it is strict.
type prefEdge struct {
	to     string
	strict bool
}

// checkForCycles builds the preference multigraph (equivalence edges
// undirected/non-strict, strict edges directed) and rejects any cycle of
// length <= cycleDepthLimit that carries at least one strict edge. Ported
// from the Python reference's check_for_cycles/dfs: duplicate preferences
// (Open Question (b)) are naturally idempotent since graph edges are a set
// here, not a multiset of raw Preference values.
func checkForCycles(criteria []Criterion, preferences []Preference) error {
	graph := make(map[string][]prefEdge, len(criteria))
	for _, c := range criteria {
		graph[c.Name] = nil
	}
	type edgeKey struct {
		from, to string
		strict   bool
	}
	seen := make(map[edgeKey]bool)
	addEdge := func(from, to string, strict bool) {
		k := edgeKey{from, to, strict}
		if seen[k] {
			return
		}
		seen[k] = true
		graph[from] = append(graph[from], prefEdge{to: to, strict: strict})
	}
	for _, p := range preferences {
		if p.Equivalent {
			addEdge(p.Criterion1, p.Criterion2, false)
			addEdge(p.Criterion2, p.Criterion1, false)
		} else {
			addEdge(p.Criterion1, p.Criterion2, true)
		}
	}

	// Deterministic iteration order over start vertices.
	names := make([]string, 0, len(criteria))
	for _, c := range criteria {
		names = append(names, c.Name)
	}
	sort.Strings(names)

	for _, start := range names {
		if cyclePath, found := cycleDFS(graph, start); found {
			return invalidModel(ErrCyclicPreferences, "%s", cyclePath)
		}
	}
	return nil
}

// cycleDFS performs the bounded-depth-first search described in spec.md
// §4.1: a cycle is forbidden iff it returns to the start vertex and
// contains at least one strict edge, and only cycles of length <=
// cycleDepthLimit are explicitly checked.
func cycleDFS(graph map[string][]prefEdge, start string) (string, bool) {
	var stack []string
	var dfs func(node string, hasStrict bool) (string, bool)
	dfs = func(node string, hasStrict bool) (string, bool) {
		stack = append(stack, node)
		defer func() { stack = stack[:len(stack)-1] }()

		for _, e := range graph[node] {
			pathHasStrict := hasStrict || e.strict
			if e.to != stack[0] && len(stack) < cycleDepthLimit {
				if path, found := dfs(e.to, pathHasStrict); found {
					return path, true
				}
				continue
			}
			if e.to == stack[0] && pathHasStrict {
				return renderCycle(graph, append(append([]string(nil), stack...), e.to)), true
			}
		}
		return "", false
	}
	return dfs(start, false)
}

// renderCycle builds the "a > b -> b = c -> c > a" rendering described in
// spec.md §4.1, looking up the relation label for each consecutive pair in
// the recorded path.
func renderCycle(graph map[string][]prefEdge, path []string) string {
	segments := make([]string, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		n1, n2 := path[i], path[i+1]
		relation := "="
		for _, e := range graph[n1] {
			if e.to == n2 {
				if e.strict {
					relation = ">"
				}
				break
			}
		}
		segments = append(segments, fmt.Sprintf("%s %s %s", n1, relation, n2))
	}
	out := segments[0]
	for _, s := range segments[1:] {
		out += " -> " + s
	}
	return out
}

// sortedKeys returns the keys of an AlternativeMatrix in sorted order for
// deterministic iteration (Go maps do not guarantee order).
func sortedKeys(m AlternativeMatrix) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
