// pareto.go — the Pareto filter (spec.md §4.3). Naive O(n^2*m) sweep with
// early termination on first dominator found, generalized from
// other_examples' fixed-field ComputeFrontier/dominates shape to an
// arbitrary criterion set, cross-checked against the Python reference's
// find_pareto_front/_dominates.
package mcda

// paretoFront returns the identifiers of rows not dominated by any other
// row, preserving the relative order of ids.
func paretoFront(rows NormalizedMatrix, ids []string, criteria []string) []string {
	dominated := make(map[string]bool, len(ids))
	for _, a := range ids {
		if dominated[a] {
			continue
		}
		for _, b := range ids {
			if a == b || dominated[b] {
				continue
			}
			if dominatesRow(rows[b], rows[a], criteria) {
				dominated[a] = true
				break
			}
		}
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !dominated[id] {
			out = append(out, id)
		}
	}
	return out
}

// dominatesRow reports whether a dominates b in the standard Pareto sense:
// a[i] >= b[i] for every criterion, and a[j] > b[j] for at least one.
func dominatesRow(a, b map[string]float64, criteria []string) bool {
	strictlyBetter := false
	for _, c := range criteria {
		if a[c] < b[c] {
			return false
		}
		if a[c] > b[c] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}
