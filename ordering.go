// ordering.go — the t-Ordering driver (spec.md §4.7): sweeps all ordered
// pairs of Pareto-surviving alternatives, removing W whenever Z t-dominates
// W. Ported from the Python reference's t_ordering.
package mcda

// tOrdering removes every t-dominated alternative from paretoIDs, preserving
// the relative order of the survivors.
func tOrdering(paretoIDs []string, rows NormalizedMatrix, gs *groupSet, dag *importanceDAG) []string {
	removed := make(map[string]bool, len(paretoIDs))

	for i, z := range paretoIDs {
		if removed[z] {
			continue
		}
		for j, w := range paretoIDs {
			if i == j || removed[w] {
				continue
			}
			if tDominates(rows[z], rows[w], gs, dag) {
				removed[w] = true
			}
		}
	}

	out := make([]string, 0, len(paretoIDs))
	for _, id := range paretoIDs {
		if !removed[id] {
			out = append(out, id)
		}
	}
	return out
}
