// closure.go — the Importance closure (spec.md §4.5). Builds the adjacency
// list of the importance DAG (less-important -> more-important group, one
// edge per strict preference whose endpoints land in distinct groups) and
// its transitive closure, grounded on the teacher's DFS traversal shape
// (graph.DFS / dfsTraverse) adapted to walk the group-adjacency map instead
// of a core.Graph.
package mcda

// importanceDAG holds, per group index, the set of direct more-important
// neighbor groups (direct) and the transitive ancestor set (ancestors):
// every group reachable by following direct edges, per spec.md §4.5.
type importanceDAG struct {
	direct    []map[int]bool // group -> direct more-important neighbors
	ancestors []map[int]bool // group -> all more-important groups (transitive)
}

// buildImportanceDAG constructs the DAG over gs's groups from the strict
// preferences in preferences.
func buildImportanceDAG(gs *groupSet, preferences []Preference) *importanceDAG {
	n := gs.count()
	dag := &importanceDAG{
		direct:    make([]map[int]bool, n),
		ancestors: make([]map[int]bool, n),
	}
	for i := 0; i < n; i++ {
		dag.direct[i] = make(map[int]bool)
	}

	for _, p := range preferences {
		if p.Equivalent {
			continue
		}
		g1 := gs.groupOf(p.Criterion1) // more important
		g2 := gs.groupOf(p.Criterion2) // less important
		if g1 != g2 {
			dag.direct[g2][g1] = true
		}
	}

	for i := 0; i < n; i++ {
		visited := make(map[int]bool)
		dag.collectAncestors(i, visited)
		dag.ancestors[i] = visited
	}
	return dag
}

// collectAncestors performs a DFS from group over the direct adjacency,
// accumulating every reachable group into visited. Mirrors the Python
// reference's recursive dfs in _assign_importance_relations.
func (d *importanceDAG) collectAncestors(group int, visited map[int]bool) {
	for more := range d.direct[group] {
		if !visited[more] {
			visited[more] = true
			d.collectAncestors(more, visited)
		}
	}
}

// ancestorsOf returns the ancestor-group-index set of group (more-important
// groups, direct and indirect).
func (d *importanceDAG) ancestorsOf(group int) map[int]bool { return d.ancestors[group] }
